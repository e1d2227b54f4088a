package domain

// ScoreProfile is the six-field numeric descriptor shared by users and crews.
// MType and Type are mutually exclusive body-type indicators; by convention at
// most one of them is non-zero per profile. Values arrive in raw domain units
// and are min-max scaled per batch before any similarity computation.
type ScoreProfile struct {
	MType         float64 `json:"m_type" bson:"m_type"`
	Type          float64 `json:"type" bson:"type"`
	Age           float64 `json:"age" bson:"age"`
	BasicScore    float64 `json:"basic_score" bson:"basic_score"`
	ActivityScore float64 `json:"activity_score" bson:"activity_score"`
	IntakeScore   float64 `json:"intake_score" bson:"intake_score"`
}

type User struct {
	UserID         int64        `json:"user_id" bson:"user_id"`
	Score          ScoreProfile `json:"score" bson:"score"`
	FavoriteSports []int        `json:"favorite_sports" bson:"favorite_sports"`
	CrewList       []int64      `json:"crew_list" bson:"crew_list"`
}

type Crew struct {
	CrewID int64        `json:"crew_id" bson:"crew_id"`
	Score  ScoreProfile `json:"score" bson:"score"`
	// CrewSports is the crew's single primary activity, unlike a user's
	// multi-valued preference set.
	CrewSports int `json:"crew_sports" bson:"crew_sports"`
}
