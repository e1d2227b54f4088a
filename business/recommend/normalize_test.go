package recommend

import (
	"math"
	"testing"

	"crewFit/domain"
)

func TestNormalizeBatch_ScalesToUnitRange(t *testing.T) {
	profiles := []domain.ScoreProfile{
		{MType: 0, Type: 1, Age: 20, BasicScore: 10, ActivityScore: 5, IntakeScore: 100},
		{MType: 1, Type: 0, Age: 40, BasicScore: 30, ActivityScore: 15, IntakeScore: 300},
		{MType: 0, Type: 1, Age: 60, BasicScore: 50, ActivityScore: 25, IntakeScore: 500},
	}

	vecs := make([]profileVec, len(profiles))
	for i, p := range profiles {
		vecs[i] = profileVector(p)
	}

	out, degenerate := normalizeBatch(vecs)
	if degenerate != 0 {
		t.Fatalf("expected no degenerate columns, got %d", degenerate)
	}

	for c := 0; c < profileDim; c++ {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range out {
			if v[c] < lo {
				lo = v[c]
			}
			if v[c] > hi {
				hi = v[c]
			}
		}
		if math.Abs(lo) > 1e-12 {
			t.Errorf("column %d: min %v, want 0", c, lo)
		}
		if math.Abs(hi-1) > 1e-12 {
			t.Errorf("column %d: max %v, want 1", c, hi)
		}
	}
}

func TestNormalizeBatch_DegenerateColumnBecomesZero(t *testing.T) {
	vecs := []profileVec{
		{1, 5, 5, 5, 5, 5},
		{0, 5, 5, 5, 5, 5},
	}

	out, degenerate := normalizeBatch(vecs)
	if degenerate != 5 {
		t.Fatalf("expected 5 degenerate columns, got %d", degenerate)
	}

	for i := range out {
		for c := 1; c < profileDim; c++ {
			if out[i][c] != 0 {
				t.Errorf("vec %d column %d: got %v, want 0", i, c, out[i][c])
			}
		}
	}
}

func TestNormalizeBatch_NonFiniteInputsBecomeZero(t *testing.T) {
	vecs := []profileVec{
		{0, math.NaN(), 10, 1, 1, 1},
		{1, 3, math.Inf(1), 2, 2, 2},
		{2, 4, 20, 3, 3, 3},
	}

	out, _ := normalizeBatch(vecs)
	for i, v := range out {
		for c, x := range v {
			if !isFinite(x) {
				t.Errorf("vec %d column %d: non-finite value %v survived normalization", i, c, x)
			}
		}
	}

	// NaN never contributes to a column's range
	if out[0][1] != 0 {
		t.Errorf("NaN input scaled to %v, want 0", out[0][1])
	}
	if out[1][2] != 0 {
		t.Errorf("+Inf input scaled to %v, want 0", out[1][2])
	}
}

func TestNormalizeBatch_Empty(t *testing.T) {
	out, degenerate := normalizeBatch(nil)
	if out != nil || degenerate != 0 {
		t.Fatalf("got (%v, %d), want (nil, 0)", out, degenerate)
	}
}
