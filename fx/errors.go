package fx

import "errors"

var (
	// ErrUnknownLevel indicates a level name other than light, medium or strong.
	ErrUnknownLevel = errors.New("unknown level")
)
