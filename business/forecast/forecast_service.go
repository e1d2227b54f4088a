package forecast

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"crewFit/domain"
	"crewFit/pkg/logger"
)

const (
	windowDays    = 7
	featureDim    = 6
	forecastSteps = 90
	p30Index      = 29
	p90Index      = 89
)

var (
	ErrEmptyHistory   = errors.New("forecast: exercise history is empty")
	ErrInvalidHistory = errors.New("forecast: last day has non-positive weight or bmi")
	ErrShortForecast  = errors.New("forecast: model output shorter than forecast horizon")
)

// Predictor is the opaque pretrained model: a windowDays×featureDim feature
// window in, forecastSteps scaled weight values out. The serving layer does
// not know or care what runs behind it.
type Predictor interface {
	Predict(ctx context.Context, window [][]float64) ([]float64, error)
}

type PredictionRepository interface {
	SaveBasic(ctx context.Context, prediction domain.WeightPrediction) error
	SaveExtra(ctx context.Context, prediction domain.WeightPrediction) error
}

type Service struct {
	predictor Predictor
	repo      PredictionRepository
	scalers   *ScalerSet
}

func NewService(predictor Predictor, repo PredictionRepository, scalers *ScalerSet) *Service {
	return &Service{
		predictor: predictor,
		repo:      repo,
		scalers:   scalers,
	}
}

// Forecast runs the 30/90-day weight forecast over up to a week of exercise
// history and persists the corrected prediction.
func (s *Service) Forecast(ctx context.Context, userID int64, days []domain.ExerciseDay) (domain.WeightPrediction, error) {
	return s.forecast(ctx, userID, days, nil, false)
}

// ForecastExtra reruns the forecast with planned extra exercise appended to
// the history. The correction heuristic leans further toward weight loss.
func (s *Service) ForecastExtra(ctx context.Context, userID int64, days, extraDays []domain.ExerciseDay, detail domain.ExerciseDetail) (domain.WeightPrediction, error) {
	merged := make([]domain.ExerciseDay, 0, len(days)+len(extraDays))
	merged = append(merged, days...)
	merged = append(merged, extraDays...)
	return s.forecast(ctx, userID, merged, &detail, true)
}

func (s *Service) forecast(ctx context.Context, userID int64, days []domain.ExerciseDay, detail *domain.ExerciseDetail, extra bool) (domain.WeightPrediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.WeightPrediction{}, fmt.Errorf("context error: %w", err)
	}
	if len(days) == 0 {
		return domain.WeightPrediction{}, ErrEmptyHistory
	}

	last := days[len(days)-1]
	if last.Weight <= 0 || last.BMI <= 0 {
		return domain.WeightPrediction{}, ErrInvalidHistory
	}

	// the basic variant assumes everyday walking on top of the recorded
	// exercise; the extra variant takes the history as given
	if !extra {
		days = withBaselineCalories(days)
	}

	padded := padHistory(days)
	window := s.buildWindow(padded)

	raw, err := s.predictor.Predict(ctx, window)
	if err != nil {
		return domain.WeightPrediction{}, fmt.Errorf("model prediction: %w", err)
	}
	if len(raw) <= p90Index {
		return domain.WeightPrediction{}, fmt.Errorf("%w: got %d steps, need %d", ErrShortForecast, len(raw), forecastSteps)
	}

	p30 := round2(s.scalers.Weight.Inverse(raw[p30Index]))
	p90 := round2(s.scalers.Weight.Inverse(raw[p90Index]))

	final30, final90 := correctForecast(padded, p30, p90, extra)

	prediction := domain.WeightPrediction{
		UserID:    userID,
		Current:   round2(padded[len(padded)-1].Weight),
		P30:       final30,
		P90:       final90,
		Exercise:  detail,
		CreatedAt: time.Now().UTC(),
	}

	if extra {
		err = s.repo.SaveExtra(ctx, prediction)
	} else {
		err = s.repo.SaveBasic(ctx, prediction)
	}
	if err != nil {
		return domain.WeightPrediction{}, fmt.Errorf("save prediction: %w", err)
	}

	logger.Debug("weight forecast",
		"user_id", userID,
		"current", prediction.Current,
		"p30", prediction.P30,
		"p90", prediction.P90,
		"extra", extra,
	)

	return prediction, nil
}

func withBaselineCalories(days []domain.ExerciseDay) []domain.ExerciseDay {
	out := make([]domain.ExerciseDay, len(days))
	copy(out, days)
	for i := range out {
		out[i].Calories += rand.NormFloat64()*baselineCaloriesStddev + baselineCaloriesMean
	}
	return out
}
