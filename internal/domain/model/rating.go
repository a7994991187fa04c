package model

import (
	"strconv"
	"strings"
	"time"
)

// RatingRecord is one append-only rating history row. The current rating for
// a (player, role) pair is the record with the maximum timestamp.
type RatingRecord struct {
	PlayerID   string
	Role       string
	Absolute   float64
	Normalized string // formatted integer percentage, e.g. "47%"
	TS         time.Time
}

// NormalizedValue parses the percentage string into a number. Corrupt values
// degrade to 0 rather than failing.
func (r RatingRecord) NormalizedValue() float64 {
	v, err := strconv.ParseFloat(strings.TrimSuffix(r.Normalized, "%"), 64)
	if err != nil {
		return 0
	}
	return v
}
