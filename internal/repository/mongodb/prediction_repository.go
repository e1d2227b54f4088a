package mongodb

import (
	"context"
	"fmt"

	"crewFit/domain"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	predictBasicCollection = "predict_basic"
	predictExtraCollection = "predict_extra"
)

type PredictionRepository struct {
	basic *mongo.Collection
	extra *mongo.Collection
}

func NewPredictionRepository(client *mongo.Client, dbName string) *PredictionRepository {
	db := client.Database(dbName)
	return &PredictionRepository{
		basic: db.Collection(predictBasicCollection),
		extra: db.Collection(predictExtraCollection),
	}
}

func (r *PredictionRepository) SaveBasic(ctx context.Context, prediction domain.WeightPrediction) error {
	return r.save(ctx, r.basic, prediction)
}

func (r *PredictionRepository) SaveExtra(ctx context.Context, prediction domain.WeightPrediction) error {
	return r.save(ctx, r.extra, prediction)
}

func (r *PredictionRepository) save(ctx context.Context, coll *mongo.Collection, prediction domain.WeightPrediction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := coll.InsertOne(ctx, prediction); err != nil {
		return fmt.Errorf("failed to insert prediction into %s: %w", coll.Name(), err)
	}

	return nil
}
