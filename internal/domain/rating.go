package domain

import "time"

// Rating scores bounds
const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a peer rating of one account by another. Immutable once created;
// it contributes to the rated account's running (sum, count) aggregate.
type Rating struct {
	ID        string
	RaterID   string
	RatedID   string
	Score     int // RatingMin..RatingMax
	Comment   string
	CreatedAt time.Time
}

// ValidScore reports whether the score lies within the rating bounds.
func ValidScore(score int) bool {
	return score >= RatingMin && score <= RatingMax
}
