package recommend

import (
	"math"
	"testing"
)

func TestCollaborativeSimilarity_IdenticalProfiles(t *testing.T) {
	cfg := DefaultConfig()
	v := profileVec{0, 0, 0, 0, 0, 0}

	got, err := collaborativeSimilarity(v, v, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("identical profiles: got %v, want 1", got)
	}
}

func TestCollaborativeSimilarity_Bounds(t *testing.T) {
	cfg := DefaultConfig()
	vecs := []profileVec{
		{0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1},
		{0.5, 0.2, 0.9, 0.1, 0.7, 0.3},
		{1, 0, 0.5, 0.5, 0.5, 0.5},
	}

	for i, u := range vecs {
		for j, c := range vecs {
			got, err := collaborativeSimilarity(u, c, cfg)
			if err != nil {
				t.Fatalf("pair (%d,%d): unexpected error: %v", i, j, err)
			}
			if got <= 0 || got > 1+1e-12 {
				t.Errorf("pair (%d,%d): %v outside (0,1]", i, j, got)
			}
		}
	}
}

func TestCollaborativeSimilarity_SanitizesNonFinite(t *testing.T) {
	cfg := DefaultConfig()
	crew := profileVec{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}

	dirty := profileVec{0, 0.5, math.Inf(1), 0.5, 0.5, 0.5}
	clean := profileVec{0, 0.5, 0, 0.5, 0.5, 0.5}

	got, err := collaborativeSimilarity(dirty, crew, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, err := collaborativeSimilarity(clean, crew, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("non-finite input: got %v, want %v (same as zero-substituted)", got, want)
	}
}

func TestBodySimilarity_Branches(t *testing.T) {
	// muscular indicator set: 0.4/0.6 weighting
	user := profileVec{1, 0.5}
	crew := profileVec{0.5, 1}
	if got := bodySimilarity(user, crew); math.Abs(got-0.8) > 1e-12 {
		t.Errorf("muscular branch: got %v, want 0.8", got)
	}

	// fallback keyed on plain type: 0.35/0.65 weighting
	user = profileVec{0, 0.5}
	crew = profileVec{0.25, 0.75}
	if got := bodySimilarity(user, crew); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("fallback branch: got %v, want 0.75", got)
	}
}
