package physics

import "errors"

var (
	// ErrInvalidBody is returned when a body's mass or moment of inertia cannot be divided by.
	ErrInvalidBody = errors.New("physics: invalid body")
	// ErrUnsupportedProcessor is returned for processor modes with no implementation (gpu).
	ErrUnsupportedProcessor = errors.New("physics: unsupported processor")
	// ErrUnknownBody is returned when a world lookup by name fails.
	ErrUnknownBody = errors.New("physics: unknown body")
)
