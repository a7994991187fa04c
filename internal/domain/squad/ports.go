package squad

// RatingSource resolves the current normalized rating of a player for a role.
// Implementations return 0 when no rating exists; the selectors treat a
// non-positive rating as ineligible.
type RatingSource interface {
	Rating(playerID, role string) float64
}

// RatingFunc adapts a plain function to a RatingSource.
type RatingFunc func(playerID, role string) float64

// Rating implements RatingSource.
func (f RatingFunc) Rating(playerID, role string) float64 {
	return f(playerID, role)
}
