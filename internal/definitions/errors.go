package definitions

import "errors"

// Sentinel kinds for definition errors.
var (
	ErrLoadDefinitions    = errors.New("failed to load definitions")
	ErrInvalidDefinitions = errors.New("invalid definitions")
	ErrUnknownRole        = errors.New("unknown role")
	ErrUnknownTactic      = errors.New("unknown tactic")
)
