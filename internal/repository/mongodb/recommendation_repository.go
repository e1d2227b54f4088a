package mongodb

import (
	"context"
	"errors"
	"fmt"

	"crewFit/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const recommendationCollection = "crew_recommend"

type RecommendationRepository struct {
	coll *mongo.Collection
}

func NewRecommendationRepository(client *mongo.Client, dbName string) *RecommendationRepository {
	return &RecommendationRepository{
		coll: client.Database(dbName).Collection(recommendationCollection),
	}
}

// SaveResult appends one result document. Re-invocation for the same user
// produces a new document, not an upsert; readers take the latest by
// created_at.
func (r *RecommendationRepository) SaveResult(ctx context.Context, result domain.RecommendationResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := r.coll.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("failed to insert recommendation result: %w", err)
	}

	return nil
}

func (r *RecommendationRepository) FindLatestByUser(ctx context.Context, userID int64) (*domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var result domain.RecommendationResult
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", recommendationCollection, err)
	}

	return &result, nil
}
