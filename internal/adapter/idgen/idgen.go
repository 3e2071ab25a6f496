package idgen

import (
	"time"

	"github.com/google/uuid"
)

// IDLength is the number of UUID characters kept for entity IDs.
const IDLength = 8

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns the first 8 characters of a random UUID. Short IDs keep
// order and customer summaries readable; collisions are acceptable only
// because the store holds a process lifetime of data.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()[:IDLength]
}

type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
