package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/albayan/bayan/internal/adapter"
	"github.com/albayan/bayan/internal/store"
)

// NewHandle returns a bolt store handle in a fresh temp directory,
// closed when the test ends.
func NewHandle(t *testing.T) *store.Handle {
	t.Helper()
	h := store.NewHandle(store.Options{
		Driver:  store.DriverBolt,
		Path:    filepath.Join(t.TempDir(), "offline.db"),
		Timeout: 100 * time.Millisecond,
	}, adapter.NullLogger())
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// UnavailableHandle returns a handle whose Open always fails.
func UnavailableHandle() *store.Handle {
	return store.NewHandle(store.Options{}, adapter.NullLogger())
}
