package resolver

import (
	"context"
	"fmt"
)

// OfflinePlaceholder is shown when no layer can supply commentary.
const OfflinePlaceholder = "عذراً، التفسير يتطلب اتصالاً بالإنترنت."

func memoryKey(edition string, surahID, verse int) string {
	return fmt.Sprintf("%s:%d:%d", edition, surahID, verse)
}

// Commentary returns the commentary of one verse. It never fails: when
// every layer misses the offline placeholder is returned.
func (s *Service) Commentary(ctx context.Context, surahID, verse int, edition string) string {
	text, _ := s.ResolveCommentary(ctx, surahID, verse, edition)
	return text
}

// ResolveCommentary is Commentary reporting the layer that answered.
// Provider answers are kept in memory for the life of the process.
func (s *Service) ResolveCommentary(ctx context.Context, surahID, verse int, edition string) (string, Layer) {
	if s.cache != nil {
		if text, ok := s.cache.GetCommentaryText(ctx, surahID, verse, edition); ok {
			return text, LayerCache
		}
	}

	key := memoryKey(edition, surahID, verse)
	if text, ok := s.memory.Get(key); ok {
		return text, LayerMemory
	}

	for _, p := range s.providers {
		if err := ctx.Err(); err != nil {
			break
		}
		text, err := p.FetchCommentary(ctx, edition, surahID, verse)
		if err != nil {
			s.logger.Debug("commentary provider failed", "provider", p.Name(), "key", key, "error", err)
			continue
		}
		if !IsPlausibleArabicProse(text) {
			s.logger.Debug("commentary provider answer rejected", "provider", p.Name(), "key", key)
			continue
		}
		s.memory.Add(key, text)
		return text, LayerNetwork
	}

	s.logger.Info("commentary unavailable", "key", key)
	return OfflinePlaceholder, LayerNone
}
