package offline

import (
	"context"

	"github.com/albayan/bayan/internal/domain"
)

// GetSurah returns the cached verses of a surah.
func (s *Service) GetSurah(ctx context.Context, id int) ([]domain.Verse, bool) {
	if !domain.ValidSurah(id) {
		return nil, false
	}
	st, ok := s.openForRead(ctx)
	if !ok {
		return nil, false
	}
	rec, ok, err := st.Surah(ctx, id)
	if err != nil {
		s.logger.Warn("failed to read surah", "surah", id, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	return rec.Verses, true
}

// GetPage returns a cached mushaf page.
func (s *Service) GetPage(ctx context.Context, n int) (*domain.PageRecord, bool) {
	if !domain.ValidPage(n) {
		return nil, false
	}
	st, ok := s.openForRead(ctx)
	if !ok {
		return nil, false
	}
	rec, ok, err := st.Page(ctx, n)
	if err != nil {
		s.logger.Warn("failed to read page", "page", n, "error", err)
		return nil, false
	}
	return rec, ok
}

// GetCommentaryText returns the cached commentary of one verse. Only the
// edition currently held offline can hit.
func (s *Service) GetCommentaryText(ctx context.Context, surahID, verse int, edition string) (string, bool) {
	if !domain.ValidSurah(surahID) || verse < 1 {
		return "", false
	}
	st, ok := s.openForRead(ctx)
	if !ok {
		return "", false
	}
	cached, err := st.CommentaryEdition(ctx)
	if err != nil {
		s.logger.Warn("failed to read commentary edition", "error", err)
		return "", false
	}
	if cached == "" || cached != edition {
		return "", false
	}
	rec, ok, err := st.Commentary(ctx, surahID)
	if err != nil {
		s.logger.Warn("failed to read commentary", "surah", surahID, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	text, ok := rec.Verses[verse]
	if !ok || text == "" {
		return "", false
	}
	return text, true
}

// GetAudioBlob returns the cached audio of one verse.
func (s *Service) GetAudioBlob(ctx context.Context, narratorID string, surahID, verse int) ([]byte, bool) {
	if narratorID == "" || !domain.ValidSurah(surahID) || verse < 1 {
		return nil, false
	}
	st, ok := s.openForRead(ctx)
	if !ok {
		return nil, false
	}
	key := domain.AudioKey{Narrator: narratorID, Surah: surahID, Verse: verse}
	blob, ok, err := st.Audio(ctx, key)
	if err != nil {
		s.logger.Warn("failed to read audio", "key", key.String(), "error", err)
		return nil, false
	}
	return blob, ok
}
