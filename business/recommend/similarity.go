package recommend

import (
	"fmt"
	"math"
)

func euclideanDistance(a, b profileVec) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// bodySimilarity applies the asymmetric body-type correction. When the user
// carries the muscular-type indicator, deviation on that axis weighs 0.4 and
// cross-axis deviation 0.6; the fallback branch keyed on the plain type
// indicator weighs 0.35/0.65 instead.
func bodySimilarity(user, crew profileVec) float64 {
	if user[0] != 0 {
		return 1 - math.Abs(math.Abs(user[0]-crew[0])*0.4+math.Abs(user[0]-crew[1])*0.6)
	}
	return 1 - math.Abs(math.Abs(user[1]-crew[0])*0.35+math.Abs(user[1]-crew[1])*0.65)
}

// collaborativeSimilarity blends distance-based similarity with the
// body-type correction over normalized profiles. Both vectors are sanitized
// before anything else; the finite check after that is an assertion, not a
// guard.
func collaborativeSimilarity(user, crew profileVec, cfg Config) (float64, error) {
	user = sanitizeVec(user)
	crew = sanitizeVec(crew)

	for i := range user {
		if !isFinite(user[i]) || !isFinite(crew[i]) {
			return 0, fmt.Errorf("%w: user=%v crew=%v", ErrNumericAnomaly, user, crew)
		}
	}

	base := 1 / (1 + euclideanDistance(user, crew))
	body := bodySimilarity(user, crew)

	return cfg.WDistance*base + cfg.WBody*body, nil
}
