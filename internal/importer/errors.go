package importer

import "errors"

// Sentinel kinds for import errors.
var (
	ErrNoTable       = errors.New("no table in export")
	ErrInvalidHeader = errors.New("export header missing required columns")
)
