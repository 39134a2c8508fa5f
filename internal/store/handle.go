// Package store is the persistent offline cache. A Handle opens the
// configured backend once, brings its schema up to LatestVersion and hands
// out the resulting domain.Store.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/albayan/bayan/internal/domain"
)

// LatestVersion is the schema version every open upgrades to.
const LatestVersion = 3

// Driver selects the storage backend.
type Driver string

const (
	DriverBolt   Driver = "bolt"
	DriverSQLite Driver = "sqlite"
)

// Options configures a Handle.
type Options struct {
	Driver  Driver
	Path    string
	Timeout time.Duration // how long to wait for the file lock
}

// Handle lazily opens the store and memoizes the first successful open.
// A failed open is not remembered, so the next Open retries.
type Handle struct {
	opts   Options
	logger *slog.Logger

	mu    sync.Mutex
	store domain.Store
}

// NewHandle creates a handle; nothing is opened until Open is called.
func NewHandle(opts Options, logger *slog.Logger) *Handle {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Driver == "" {
		opts.Driver = DriverBolt
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second
	}
	return &Handle{
		opts:   opts,
		logger: logger.With("component", "store"),
	}
}

// Open returns the shared store, opening and migrating it on first use.
// Every failure wraps domain.ErrStoreUnavailable.
func (h *Handle) Open(ctx context.Context) (domain.Store, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		return h.store, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}

	s, err := open(h.opts, LatestVersion)
	if err != nil {
		h.logger.Warn("store unavailable", "driver", h.opts.Driver, "path", h.opts.Path, "error", err)
		return nil, err
	}

	h.logger.Debug("store opened", "driver", h.opts.Driver, "path", h.opts.Path, "schema", LatestVersion)
	h.store = s
	return s, nil
}

// Close releases the store if it was opened. The handle can be reopened.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store == nil {
		return nil
	}
	err := h.store.Close()
	h.store = nil
	return err
}

// open dispatches on the driver and migrates to version.
func open(opts Options, version int) (domain.Store, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("%w: no store path configured", domain.ErrStoreUnavailable)
	}

	var (
		s   domain.Store
		err error
	)
	switch opts.Driver {
	case DriverBolt, "":
		s, err = openBolt(opts.Path, opts.Timeout, version)
	case DriverSQLite:
		s, err = openSQLite(opts.Path, opts.Timeout, uint(version))
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", domain.ErrStoreUnavailable, opts.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return s, nil
}
