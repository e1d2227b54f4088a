package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestBuildSportVector(t *testing.T) {
	vec, err := BuildSportVector([]int{1, 15, 30}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 30 {
		t.Fatalf("vector length %d, want 30", len(vec))
	}

	sum := 0.0
	for _, x := range vec {
		sum += x
	}
	if sum != 3 {
		t.Errorf("indicator sum %v, want 3", sum)
	}
	for _, i := range []int{0, 14, 29} {
		if vec[i] != 1 {
			t.Errorf("index %d: got %v, want 1", i, vec[i])
		}
	}
}

func TestBuildSportVector_OutOfRange(t *testing.T) {
	for _, id := range []int{0, -1, 31} {
		_, err := BuildSportVector([]int{id}, 30)
		if !errors.Is(err, ErrInvalidSportID) {
			t.Errorf("sport id %d: got %v, want ErrInvalidSportID", id, err)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	a := []float64{1, 0, 1, 0}
	b := []float64{0, 1, 0, 1}

	if got := cosineSimilarity(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("identical vectors: got %v, want 1", got)
	}
	if got := cosineSimilarity(a, b); got != 0 {
		t.Errorf("orthogonal vectors: got %v, want 0", got)
	}

	zero := []float64{0, 0, 0, 0}
	if got := cosineSimilarity(a, zero); got != 0 {
		t.Errorf("zero vector: got %v, want 0", got)
	}
	if got := cosineSimilarity(a, []float64{1, 0}); got != 0 {
		t.Errorf("length mismatch: got %v, want 0", got)
	}
}
