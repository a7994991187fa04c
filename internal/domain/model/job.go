package model

import "time"

// RatingJob asks the rating workers to re-rate one player across a set of
// roles. Jobs are deduplicated per player while in flight.
type RatingJob struct {
	PlayerID   string
	Roles      []string
	EnqueuedAt time.Time
}
