package recommend

import (
	"fmt"
	"math"

	"crewFit/domain"
)

// BuildSportVector converts a set of 1-indexed sport identifiers into a
// fixed-length indicator vector over the catalog. Out-of-range identifiers
// are a contract violation, not something to drop silently.
func BuildSportVector(sports []int, totalSports int) ([]float64, error) {
	vec := make([]float64, totalSports)
	for _, id := range sports {
		if id <= 0 || id > totalSports {
			return nil, fmt.Errorf("%w: %d (catalog size %d)", ErrInvalidSportID, id, totalSports)
		}
		vec[id-1] = 1
	}
	return vec, nil
}

// buildSportMatrix builds one indicator row per user, in batch order.
func buildSportMatrix(users []domain.User, totalSports int) ([][]float64, error) {
	matrix := make([][]float64, len(users))
	for i, u := range users {
		row, err := BuildSportVector(u.FavoriteSports, totalSports)
		if err != nil {
			return nil, fmt.Errorf("user %d: %w", u.UserID, err)
		}
		matrix[i] = row
	}
	return matrix, nil
}

// cosineSimilarity returns 0 for zero-length or zero vectors.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	dot := 0.0
	normA := 0.0
	normB := 0.0
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// cosineAgainstAll scores one user's sport vector against every row of the
// batch matrix in a single pass; the result is indexed by batch position.
func cosineAgainstAll(target []float64, matrix [][]float64) []float64 {
	out := make([]float64, len(matrix))
	for i, row := range matrix {
		out[i] = cosineSimilarity(target, row)
	}
	return out
}
