package forecast

import (
	"math"
	"math/rand"

	"crewFit/domain"
)

// baseline calories burned by everyday walking, added as jitter when a day
// has to be synthesized
const (
	baselineCaloriesMean   = 250
	baselineCaloriesStddev = 15
)

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// padHistory extends a short history to windowDays by repeating the last day
// with jittered calories and a small upward weight drift, recomputing BMI
// from the implied height. Histories longer than the window keep the most
// recent windowDays entries.
func padHistory(days []domain.ExerciseDay) []domain.ExerciseDay {
	padded := make([]domain.ExerciseDay, len(days))
	copy(padded, days)

	last := padded[len(padded)-1]
	heightSqr := last.Weight / last.BMI

	for len(padded) < windowDays {
		day := padded[len(padded)-1]
		day.Calories = rand.NormFloat64()*baselineCaloriesStddev + baselineCaloriesMean
		day.Weight += round2(rand.Float64()*0.3 - 0.1)
		day.BMI = day.Weight / heightSqr
		padded = append(padded, day)
	}

	if len(padded) > windowDays {
		padded = padded[len(padded)-windowDays:]
	}

	return padded
}

// buildWindow encodes a padded history as the model's windowDays×featureDim
// input: [sex_1, sex_2, age, bmi, weight, calories] per day, with the three
// numeric channels scaled by the fitted ranges.
func (s *Service) buildWindow(padded []domain.ExerciseDay) [][]float64 {
	window := make([][]float64, len(padded))
	for i, d := range padded {
		row := make([]float64, featureDim)
		switch d.Sex {
		case 1:
			row[0] = 1
		case 2:
			row[1] = 1
		}
		row[2] = float64(d.Age)
		row[3] = s.scalers.BMI.Transform(d.BMI)
		row[4] = s.scalers.Weight.Transform(d.Weight)
		row[5] = s.scalers.Calories.Transform(d.Calories)
		window[i] = row
	}
	return window
}
