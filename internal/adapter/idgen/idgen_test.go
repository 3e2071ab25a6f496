package idgen

import (
	"testing"
	"time"
)

func TestNewID_LengthAndUniqueness(t *testing.T) {
	gen := NewUUIDGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if len(id) != IDLength {
			t.Fatalf("expected %d-character ID, got %q", IDLength, id)
		}
		if seen[id] {
			t.Fatalf("duplicate ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestSystemClock(t *testing.T) {
	clock := NewSystemClock()

	before := time.Now().Add(-time.Second)
	now := clock.Now()
	after := time.Now().Add(time.Second)

	if now.Before(before) || now.After(after) {
		t.Errorf("clock returned implausible time: %v", now)
	}
}
