package service

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewID_Format(t *testing.T) {
	gen := NewIDGenerator()

	id := gen.NewID()

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		t.Fatalf("expected 3 dash-separated parts, got %q", id)
	}
	if parts[0] != "BK" {
		t.Errorf("expected BK prefix, got %q", parts[0])
	}
	if len(parts[2]) != idSuffixLen {
		t.Errorf("expected suffix of %d characters, got %q", idSuffixLen, parts[2])
	}
	for _, c := range parts[2] {
		if !strings.ContainsRune(idSuffixAlphabet, c) {
			t.Errorf("suffix character %q outside alphabet", c)
		}
	}
}

func TestNewID_TimestampComponent(t *testing.T) {
	fixed := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	gen := &bookingIDGenerator{now: func() time.Time { return fixed }}

	id := gen.NewID()

	parts := strings.Split(id, "-")
	millis, err := strconv.ParseInt(parts[1], 36, 64)
	if err != nil {
		t.Fatalf("timestamp part %q is not base36: %v", parts[1], err)
	}
	if millis != fixed.UnixMilli() {
		t.Errorf("expected %d millis, got %d", fixed.UnixMilli(), millis)
	}
}

func TestNewID_SuffixVariesWithinMillisecond(t *testing.T) {
	fixed := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	gen := &bookingIDGenerator{now: func() time.Time { return fixed }}

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[gen.NewID()] = true
	}

	// identical timestamps, so any repeats come from suffix collisions
	if len(seen) < 49 {
		t.Errorf("expected near-unique ids within one millisecond, got %d distinct of 50", len(seen))
	}
}
