package offline

import (
	"context"

	"github.com/albayan/bayan/internal/domain"
)

// ClearScripture empties surahs and pages together.
func (s *Service) ClearScripture(ctx context.Context) error {
	return s.clear(ctx, domain.CollectionSurahs, domain.CollectionPages)
}

// ClearCommentary empties the commentary collection and forgets its edition.
func (s *Service) ClearCommentary(ctx context.Context) error {
	return s.clear(ctx, domain.CollectionCommentary)
}

// ClearAudio removes the audio of every narrator.
func (s *Service) ClearAudio(ctx context.Context) error {
	return s.clear(ctx, domain.CollectionAudio)
}

func (s *Service) clear(ctx context.Context, collections ...domain.Collection) error {
	st, err := s.store.Open(ctx)
	if err != nil {
		return err
	}
	if err := st.Clear(ctx, collections...); err != nil {
		s.logger.Error("failed to clear", "collections", collections, "error", err)
		return err
	}
	s.logger.Info("cleared", "collections", collections)
	return nil
}
