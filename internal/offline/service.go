// Package offline is the on-device content cache: bulk loaders that fill
// the store, point reads over it, download status and eviction.
package offline

import (
	"context"
	"log/slog"

	"github.com/albayan/bayan/internal/domain"
)

// DefaultEdition is the commentary edition cached when none is configured.
const DefaultEdition = "ar.muyassar"

// Opener hands out the shared store. *store.Handle implements it.
type Opener interface {
	Open(ctx context.Context) (domain.Store, error)
}

// Options tunes the service.
type Options struct {
	// Edition is the one commentary edition kept offline
	Edition string
	// MaxInFlight caps concurrent audio requests inside one surah; 0 sends
	// the whole surah at once
	MaxInFlight int
}

// Service orchestrates upstream sources + store operations.
type Service struct {
	store      Opener
	scripture  domain.ScriptureSource
	commentary domain.CommentaryCorpusSource
	audio      domain.AudioSource
	opts       Options
	logger     *slog.Logger
}

// NewService creates a new offline service.
func NewService(
	store Opener,
	scripture domain.ScriptureSource,
	commentary domain.CommentaryCorpusSource,
	audio domain.AudioSource,
	opts Options,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Edition == "" {
		opts.Edition = DefaultEdition
	}
	return &Service{
		store:      store,
		scripture:  scripture,
		commentary: commentary,
		audio:      audio,
		opts:       opts,
		logger:     logger.With("component", "offline"),
	}
}

// Edition returns the commentary edition this service caches.
func (s *Service) Edition() string {
	return s.opts.Edition
}

// openForRead opens the store for a lookup. An unavailable store is a miss,
// not an error, so it is only logged.
func (s *Service) openForRead(ctx context.Context) (domain.Store, bool) {
	st, err := s.store.Open(ctx)
	if err != nil {
		s.logger.Debug("store unavailable for read", "error", err)
		return nil, false
	}
	return st, true
}
