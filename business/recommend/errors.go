package recommend

import "errors"

var (
	// ErrInvalidSportID marks a sport identifier outside the catalog range.
	// Silent truncation would corrupt every cosine similarity in the batch,
	// so this is batch-fatal.
	ErrInvalidSportID = errors.New("sport id outside catalog range")

	// ErrMalformedProfile marks a user or crew record that is structurally
	// unusable: non-positive or duplicate id within the batch.
	ErrMalformedProfile = errors.New("malformed profile")

	// ErrNumericAnomaly marks a non-finite value surviving sanitization.
	// Sanitization replaces NaN/Inf with 0.0 first, so hitting this means a
	// logic defect upstream, not bad input.
	ErrNumericAnomaly = errors.New("non-finite value survived sanitization")
)
