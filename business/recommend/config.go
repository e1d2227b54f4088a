package recommend

type Config struct {
	// TotalSports is the sport catalog size; favorite_sports and crew_sports
	// identifiers are 1-indexed against it.
	TotalSports int

	// Ranking parameters. Candidates are sorted by combined similarity,
	// hard-capped at CandidateCap, then filtered by ScoreFloor. When at
	// least ResampleThreshold survive, the TopN strongest are kept and
	// ResampleCount more are drawn at random from the remainder.
	TopN              int
	CandidateCap      int
	ScoreFloor        float64
	ResampleThreshold int
	ResampleCount     int

	// Weights inside collaborative similarity (distance term vs body-type
	// correction) and in the final blend (collaborative vs content).
	WDistance      float64
	WBody          float64
	WCollaborative float64
	WContent       float64
}

const (
	defaultTotalSports       = 30
	defaultTopN              = 6
	defaultCandidateCap      = 20
	defaultScoreFloor        = 0.2
	defaultResampleThreshold = 9
	defaultResampleCount     = 3
	defaultWDistance         = 0.7
	defaultWBody             = 0.3
	defaultWCollaborative    = 0.7
	defaultWContent          = 0.3
)

func DefaultConfig() Config {
	return Config{
		TotalSports:       defaultTotalSports,
		TopN:              defaultTopN,
		CandidateCap:      defaultCandidateCap,
		ScoreFloor:        defaultScoreFloor,
		ResampleThreshold: defaultResampleThreshold,
		ResampleCount:     defaultResampleCount,
		WDistance:         defaultWDistance,
		WBody:             defaultWBody,
		WCollaborative:    defaultWCollaborative,
		WContent:          defaultWContent,
	}
}
