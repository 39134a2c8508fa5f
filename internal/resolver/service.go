// Package resolver answers content requests by trying the offline cache,
// then the bundled fallback dataset, then the network. Network answers are
// never written back to the offline store.
package resolver

import (
	"context"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/albayan/bayan/internal/domain"
)

// DefaultMemoryCacheSize is the number of commentary answers kept in memory.
const DefaultMemoryCacheSize = 4096

// Cache is the persistent cache reader. *offline.Service implements it.
type Cache interface {
	GetSurah(ctx context.Context, id int) ([]domain.Verse, bool)
	GetPage(ctx context.Context, n int) (*domain.PageRecord, bool)
	GetCommentaryText(ctx context.Context, surahID, verse int, edition string) (string, bool)
}

// Static is the bundled dataset. *fallback.Dataset implements it.
type Static interface {
	Surah(id int) ([]domain.Verse, bool)
	Page(n int) (*domain.PageRecord, bool)
}

// Layer names where an answer came from.
type Layer string

const (
	LayerCache   Layer = "cache"
	LayerStatic  Layer = "static"
	LayerMemory  Layer = "memory"
	LayerNetwork Layer = "network"
	LayerNone    Layer = "none"
)

// Options tunes the resolver.
type Options struct {
	MemoryCacheSize int
}

// Service resolves scripture and commentary across all layers.
type Service struct {
	cache     Cache
	static    Static
	scripture domain.ScriptureSource
	providers []domain.CommentaryProvider
	memory    *lru.Cache[string, string]
	logger    *slog.Logger
}

// NewService creates a resolver. cache and static may be nil when the
// layer is not available; providers are tried in order.
func NewService(
	cache Cache,
	static Static,
	scripture domain.ScriptureSource,
	providers []domain.CommentaryProvider,
	opts Options,
	logger *slog.Logger,
) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	size := opts.MemoryCacheSize
	if size <= 0 {
		size = DefaultMemoryCacheSize
	}
	memory, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Service{
		cache:     cache,
		static:    static,
		scripture: scripture,
		providers: providers,
		memory:    memory,
		logger:    logger.With("component", "resolver"),
	}, nil
}

// Surah returns the verses of a surah from the first layer that has them.
func (s *Service) Surah(ctx context.Context, id int) ([]domain.Verse, bool) {
	verses, layer := s.ResolveSurah(ctx, id)
	return verses, layer != LayerNone
}

// ResolveSurah is Surah reporting the layer that answered.
func (s *Service) ResolveSurah(ctx context.Context, id int) ([]domain.Verse, Layer) {
	if !domain.ValidSurah(id) {
		return nil, LayerNone
	}
	if s.cache != nil {
		if verses, ok := s.cache.GetSurah(ctx, id); ok {
			return verses, LayerCache
		}
	}
	if s.static != nil {
		if verses, ok := s.static.Surah(id); ok {
			return verses, LayerStatic
		}
	}
	if s.scripture == nil {
		return nil, LayerNone
	}
	verses, err := s.scripture.FetchSurah(ctx, id)
	if err != nil {
		s.logger.Warn("failed to fetch surah", "surah", id, "error", err)
		return nil, LayerNone
	}
	return verses, LayerNetwork
}

// Page returns a mushaf page from the first layer that has it.
func (s *Service) Page(ctx context.Context, n int) (*domain.PageRecord, bool) {
	page, layer := s.ResolvePage(ctx, n)
	return page, layer != LayerNone
}

// ResolvePage is Page reporting the layer that answered.
func (s *Service) ResolvePage(ctx context.Context, n int) (*domain.PageRecord, Layer) {
	if !domain.ValidPage(n) {
		return nil, LayerNone
	}
	if s.cache != nil {
		if page, ok := s.cache.GetPage(ctx, n); ok {
			return page, LayerCache
		}
	}
	if s.static != nil {
		if page, ok := s.static.Page(n); ok {
			return page, LayerStatic
		}
	}
	if s.scripture == nil {
		return nil, LayerNone
	}
	page, err := s.scripture.FetchPage(ctx, n)
	if err != nil {
		s.logger.Warn("failed to fetch page", "page", n, "error", err)
		return nil, LayerNone
	}
	return page, LayerNetwork
}
