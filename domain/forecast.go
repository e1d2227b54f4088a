package domain

import "time"

// ExerciseDay is one day of a user's exercise history.
type ExerciseDay struct {
	Sex      int     `json:"sex" bson:"sex"`
	Age      int     `json:"age" bson:"age"`
	BMI      float64 `json:"bmi" bson:"bmi"`
	Weight   float64 `json:"weight" bson:"weight"`
	Calories float64 `json:"calories" bson:"calories"`
}

// ExerciseDetail describes the planned extra exercise attached to an
// extra-forecast request.
type ExerciseDetail struct {
	ExerciseID int `json:"exercise_id" bson:"exercise_id"`
	Duration   int `json:"duration" bson:"duration"`
	Count      int `json:"count" bson:"count"`
}

// WeightPrediction is the persisted 30/90-day forecast document. Exercise is
// only set for the extra-forecast variant.
type WeightPrediction struct {
	UserID    int64           `json:"user_id" bson:"user_id"`
	Current   float64         `json:"current" bson:"current"`
	P30       float64         `json:"p30" bson:"p30"`
	P90       float64         `json:"p90" bson:"p90"`
	Exercise  *ExerciseDetail `json:"exercise,omitempty" bson:"exercise,omitempty"`
	CreatedAt time.Time       `json:"created_at" bson:"created_at"`
}
