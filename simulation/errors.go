package simulation

import "errors"

var (
	// ErrUnknownEntity is returned when an operation refers to an entity that is not spawned.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrNoHistory is returned when no frame was recorded for the requested tick.
	ErrNoHistory = errors.New("no frame recorded for tick")
)
