package domain

import "time"

// CrewMatch is one scored (user, crew) pair produced by the similarity
// engine. Combined is the ranking score; it is not bounded above by 1 since
// content similarity adds up to 0.3 on top of the collaborative term.
type CrewMatch struct {
	CrewID        int64   `json:"crew_id"`
	Combined      float64 `json:"similarity"`
	Collaborative float64 `json:"collaborative_similarity"`
	Content       float64 `json:"content_similarity"`
}

// ScoreSnapshot carries the three raw score components persisted alongside a
// recommendation, for both the user and each recommended crew.
type ScoreSnapshot struct {
	BasicScore    float64 `json:"basic_score" bson:"basic_score"`
	ActivityScore float64 `json:"activity_score" bson:"activity_score"`
	IntakeScore   float64 `json:"intake_score" bson:"intake_score"`
}

type RecommendedCrew struct {
	CrewID        int64         `json:"crew_id" bson:"crew_id"`
	Similarity    float64       `json:"similarity" bson:"similarity"`
	Collaborative float64       `json:"collaborative_similarity" bson:"collaborative_similarity"`
	Content       float64       `json:"content_similarity" bson:"content_similarity"`
	Score         ScoreSnapshot `json:"score" bson:"score"`
}

// RecommendationResult is the per-user output document. It is created once
// per user per batch invocation, never mutated afterwards, and written to the
// crew_recommend collection. The order of Crews carries no meaning; the
// ranker shuffles its selection before returning.
type RecommendationResult struct {
	UserID    int64             `json:"user_id" bson:"user_id"`
	User      ScoreSnapshot     `json:"user" bson:"user"`
	Crews     []RecommendedCrew `json:"crew_recommended" bson:"crew_recommended"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

type UserFailure struct {
	UserID int64  `json:"user_id"`
	Reason string `json:"reason"`
}

// BatchSummary reports the outcome of one recommendation batch. Failures on
// individual users do not abort the batch; they are listed here instead.
type BatchSummary struct {
	UsersProcessed int           `json:"users_processed"`
	UsersFailed    int           `json:"users_failed"`
	Failures       []UserFailure `json:"failures,omitempty"`
}
