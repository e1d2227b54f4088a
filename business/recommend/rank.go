package recommend

import (
	"math/rand"
	"sort"

	"crewFit/domain"
)

// Rand is the slice of math/rand the ranker needs. *rand.Rand satisfies it,
// so tests inject a seeded instance; the default delegates to the
// process-wide source.
type Rand interface {
	Intn(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

type systemRand struct{}

func (systemRand) Intn(n int) int                     { return rand.Intn(n) }
func (systemRand) Perm(n int) []int                   { return rand.Perm(n) }
func (systemRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// capAndFilter applies the two-stage cut: first the hard cap, then the
// quality floor. A candidate beyond the cap is never considered, whatever
// its score. Input must already be sorted by combined score descending.
func capAndFilter(sorted []domain.CrewMatch, cfg Config) []domain.CrewMatch {
	if len(sorted) > cfg.CandidateCap {
		sorted = sorted[:cfg.CandidateCap]
	}

	filtered := make([]domain.CrewMatch, 0, len(sorted))
	for _, c := range sorted {
		if c.Combined >= cfg.ScoreFloor {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// rankCandidates orders candidates by combined similarity, cuts with
// capAndFilter, and blends exploitation with exploration: the TopN strongest
// plus ResampleCount drawn without replacement from the remainder, provided
// at least ResampleThreshold candidates survive the cut. Smaller sets pass
// through unmodified. The returned order is shuffled; callers must not read
// rank off it. Empty input is a valid terminal outcome.
func rankCandidates(cands []domain.CrewMatch, cfg Config, rng Rand) []domain.CrewMatch {
	if len(cands) == 0 {
		return []domain.CrewMatch{}
	}

	sorted := make([]domain.CrewMatch, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Combined > sorted[j].Combined
	})

	filtered := capAndFilter(sorted, cfg)

	var selected []domain.CrewMatch
	if len(filtered) >= cfg.ResampleThreshold {
		selected = append(selected, filtered[:cfg.TopN]...)
		rest := filtered[cfg.TopN:]
		for _, idx := range rng.Perm(len(rest))[:cfg.ResampleCount] {
			selected = append(selected, rest[idx])
		}
	} else {
		selected = filtered
	}

	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	return selected
}
