package position

import "errors"

// Sentinel kinds for position errors.
var (
	ErrUnknownSlot = errors.New("slot missing from eligibility table")
)
