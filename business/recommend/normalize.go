package recommend

import (
	"math"

	"crewFit/domain"
)

const profileDim = 6

// profileVec lays out the six score fields in fixed order:
// [m_type, type, age, basic_score, activity_score, intake_score]
type profileVec [profileDim]float64

func profileVector(p domain.ScoreProfile) profileVec {
	return profileVec{p.MType, p.Type, p.Age, p.BasicScore, p.ActivityScore, p.IntakeScore}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// sanitizeVec replaces NaN and ±Inf with 0.0.
func sanitizeVec(v profileVec) profileVec {
	for i, x := range v {
		if !isFinite(x) {
			v[i] = 0
		}
	}
	return v
}

// normalizeBatch min-max scales each profile column across the batch
// independently, so every field lands in [0,1]. A degenerate column
// (max == min, or no finite values at all) maps to all zeros. Returns the
// scaled vectors and the number of degenerate columns.
//
// Users and crews must be normalized as separate batches; their ranges are
// independent.
func normalizeBatch(vecs []profileVec) ([]profileVec, int) {
	if len(vecs) == 0 {
		return nil, 0
	}

	out := make([]profileVec, len(vecs))
	degenerate := 0

	for c := 0; c < profileDim; c++ {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for _, v := range vecs {
			x := v[c]
			if !isFinite(x) {
				continue
			}
			if x < lo {
				lo = x
			}
			if x > hi {
				hi = x
			}
		}

		if !(hi > lo) {
			degenerate++
			continue
		}

		span := hi - lo
		for i, v := range vecs {
			out[i][c] = (v[c] - lo) / span
		}
	}

	// non-finite inputs scale to non-finite outputs; the invariant is that
	// nothing non-finite leaves normalization
	for i := range out {
		out[i] = sanitizeVec(out[i])
	}

	return out, degenerate
}
