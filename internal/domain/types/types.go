// Package types contains common read shapes shared across layers.
package types

// Entry represents one row of a per-role leaderboard.
type Entry struct {
	Rank     int     `json:"rank"`
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Club     string  `json:"club"`
	Rating   float64 `json:"rating"`
}

// RatingRow is one player/role rating as returned by the ratings endpoints.
type RatingRow struct {
	Role       string  `json:"role"`
	Absolute   float64 `json:"absolute"`
	Normalized string  `json:"normalized"`
	TS         string  `json:"ts"`
}
