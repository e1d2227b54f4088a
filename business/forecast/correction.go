package forecast

import (
	"math"
	"math/rand"

	"crewFit/domain"
)

// blendFactors picks how strongly the raw forecast is trusted, keyed on its
// relative error against the current weight. Large errors get small factors
// (lean on the current weight) plus a calorie-driven bias.
func blendFactors(err30, err90 float64) (f30, f90 float64, needsBias bool) {
	switch {
	case err30 > 0.03 || err90 > 0.08:
		return 0.1, 0.15, true
	case err30 > 0.02 || err90 > 0.05:
		return 0.35, 0.4, true
	default:
		return 0.8, 0.8, false
	}
}

// calorieBias maps the average daily burn to an additive weight adjustment:
// heavy exercisers trend down, light ones trend up. The extra-exercise
// variant shifts both further down.
func calorieBias(calAverage float64, extra bool) (b30, b90 float64) {
	switch {
	case calAverage >= 1000:
		b30 = uniform(-3, -1.5)
		b90 = uniform(-10, -9)
	case calAverage >= 500:
		b30 = uniform(-1.5, -0.5)
		b90 = uniform(-4, -3)
	case calAverage >= 350:
		b30 = uniform(-0.5, 0.5)
		b90 = uniform(-1, -0.5)
	default:
		b30 = uniform(0, 1)
		b90 = uniform(1, 2.5)
	}

	if extra {
		b30 -= uniform(0, 0.5)
		b90 -= uniform(0.5, 1)
	}

	return b30, b90
}

func uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

func averageCalories(days []domain.ExerciseDay) float64 {
	if len(days) == 0 {
		return 0
	}
	total := 0.0
	for _, d := range days {
		total += d.Calories
	}
	return total / float64(len(days))
}

// correctForecast blends the raw model output toward the user's current
// weight. The 90-day value chains off the corrected 30-day value, and both
// are finally averaged against the anchor once more.
func correctForecast(days []domain.ExerciseDay, p30, p90 float64, extra bool) (float64, float64) {
	last := days[len(days)-1].Weight

	err30 := math.Abs(last-p30) / last
	err90 := math.Abs(last-p90) / last

	f30, f90, needsBias := blendFactors(err30, err90)

	var b30, b90 float64
	if needsBias {
		b30, b90 = calorieBias(averageCalories(days), extra)
	}

	c30 := last*(1-f30) + p30*f30 + b30
	c90 := c30*(1-f90) + p90*f90 + b90

	final30 := round2((last + c30) / 2)
	final90 := round2((final30 + c90) / 2)

	return final30, final90
}
