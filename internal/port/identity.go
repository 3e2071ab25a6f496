package port

import "time"

type IDGenerator interface {
	// NewID returns an opaque unique identifier
	NewID() string
}

type Clock interface {
	// Now returns the current time
	Now() time.Time
}
