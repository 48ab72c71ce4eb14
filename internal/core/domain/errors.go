package domain

import "errors"

// Sentinel errors shared across the core and its adapters. Callers
// match them with errors.Is; adapters wrap them with context.
var (
	// ErrNotFound reports that a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCoordinates reports a coordinate outside the valid
	// WGS84 range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
