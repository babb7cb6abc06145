package bankbook

import (
	"path/filepath"
	"testing"
	"time"
)

// mustAmount is a helper for tests to create an amount from its textual form.
func mustAmount(t *testing.T, s string) Amount {
	t.Helper()
	a, err := ParseAmount(s)
	if err != nil {
		t.Fatalf("ParseAmount(%q) returned an unexpected error: %v", s, err)
	}
	return a
}

// ts is a helper for tests to parse an RFC3339 timestamp from const.
func ts(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		t.Fatalf("time.Parse(%q) returned an unexpected error: %v", s, err)
	}
	return v
}

// newTestManager returns a manager over a fresh file store in a temp dir.
func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewDatasetStore(filepath.Join(t.TempDir(), "data.json")))
}
