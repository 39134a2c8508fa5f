package offline

import (
	"context"

	"github.com/albayan/bayan/internal/domain"
)

// Sentinel verses checked by IsAudioCached: the first verse of the first
// surah and the last verse of the last surah. Interior gaps go unnoticed.
var audioSentinels = [...]struct{ surah, verse int }{
	{1, 1},
	{domain.SurahCount, 6},
}

// IsScriptureCached reports whether exactly one record per surah is stored.
func (s *Service) IsScriptureCached(ctx context.Context) bool {
	return s.countIs(ctx, domain.CollectionSurahs, domain.SurahCount)
}

// IsCommentaryCached reports whether exactly one commentary record per
// surah is stored.
func (s *Service) IsCommentaryCached(ctx context.Context) bool {
	return s.countIs(ctx, domain.CollectionCommentary, domain.SurahCount)
}

// IsAudioCached reports whether both sentinel verses of a narrator are
// stored. It is a two-lookup approximation, not a full completeness check.
func (s *Service) IsAudioCached(ctx context.Context, narratorID string) bool {
	for _, sentinel := range audioSentinels {
		if _, ok := s.GetAudioBlob(ctx, narratorID, sentinel.surah, sentinel.verse); !ok {
			return false
		}
	}
	return true
}

// Status aggregates the download state of every content type for the
// given narrators.
func (s *Service) Status(ctx context.Context, narratorIDs []string) domain.CacheStatus {
	status := domain.CacheStatus{Audio: make(map[string]bool, len(narratorIDs))}

	st, ok := s.openForRead(ctx)
	if !ok {
		for _, id := range narratorIDs {
			status.Audio[id] = false
		}
		return status
	}
	status.Available = true

	if v, err := st.SchemaVersion(ctx); err == nil {
		status.Schema = v
	}
	status.Scripture = s.IsScriptureCached(ctx)
	status.Commentary = s.IsCommentaryCached(ctx)
	if status.Commentary {
		status.Edition, _ = st.CommentaryEdition(ctx)
	}
	for _, id := range narratorIDs {
		status.Audio[id] = s.IsAudioCached(ctx, id)
	}
	return status
}

func (s *Service) countIs(ctx context.Context, c domain.Collection, want int) bool {
	st, ok := s.openForRead(ctx)
	if !ok {
		return false
	}
	n, err := st.Count(ctx, c)
	if err != nil {
		s.logger.Warn("failed to count", "collection", c, "error", err)
		return false
	}
	return n == want
}
