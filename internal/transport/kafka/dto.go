package kafka

import "time"

// RatingEvent is the wire form of one submitted rating on the
// ratings.submitted topic.
type RatingEvent struct {
	RaterID   string    `json:"rater_id"`
	RatedID   string    `json:"rated_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
