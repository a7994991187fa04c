package squad

import "errors"

// Sentinel kinds for squad building errors.
var (
	ErrNoPlayers = errors.New("no players available")
)
