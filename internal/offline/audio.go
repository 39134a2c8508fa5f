package offline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/albayan/bayan/internal/catalog"
	"github.com/albayan/bayan/internal/domain"
)

// LoadNarratorAudio downloads every verse of one narrator, surah by surah.
// All verses of a surah are fetched concurrently and the next surah starts
// only after the whole batch settled. Each blob is stored as soon as it
// arrives; a verse that fails is left out and listed in the summary without
// failing the run. Only the initial index fetch, an unavailable store, or
// cancellation make the run fail.
func (s *Service) LoadNarratorAudio(ctx context.Context, narratorID string, progress domain.ProgressFunc) (domain.AudioSummary, error) {
	summary := domain.AudioSummary{RunID: uuid.NewString(), Narrator: narratorID}
	log := s.logger.With("run_id", summary.RunID, "narrator", narratorID)

	if _, ok := catalog.LookupNarrator(narratorID); !ok {
		return summary, fmt.Errorf("%w: %q", domain.ErrUnknownNarrator, narratorID)
	}

	st, err := s.store.Open(ctx)
	if err != nil {
		log.Error("audio load failed", "error", err)
		return summary, err
	}

	progress.Report(domain.Progress{Message: "Fetching surah metadata..."})
	index, err := s.scripture.FetchSurahIndex(ctx)
	if err != nil {
		log.Error("failed to fetch surah index", "error", err)
		return summary, err
	}
	if err := domain.ValidateIndex(index); err != nil {
		log.Error("rejected surah index", "error", err)
		return summary, err
	}

	log.Info("audio load started", "surahs", len(index))
	for i, surah := range index {
		if err := ctx.Err(); err != nil {
			log.Info("audio load cancelled", "completed_surahs", i, "stored", summary.Stored)
			return summary, err
		}

		progress.Report(domain.Progress{
			Message: fmt.Sprintf("Downloading %s (%d verses)...", surah.Name, surah.VersesCount),
			Done:    i,
			Total:   len(index),
		})

		for _, r := range s.loadSurahAudio(ctx, st, narratorID, surah, log) {
			summary.Add(r)
		}
		summary.Surahs++
	}

	log.Info("audio load finished", "attempted", summary.Attempted, "stored", summary.Stored, "failed", summary.Failed)
	progress.Report(domain.Progress{
		Message: fmt.Sprintf("Stored %d of %d verses", summary.Stored, summary.Attempted),
		Done:    len(index),
		Total:   len(index),
	})
	return summary, nil
}

// loadSurahAudio fetches one surah's batch and waits for every verse.
func (s *Service) loadSurahAudio(
	ctx context.Context,
	st domain.Store,
	narratorID string,
	surah domain.SurahInfo,
	log *slog.Logger,
) []domain.VerseResult {
	results := make([]domain.VerseResult, surah.VersesCount)

	var g errgroup.Group
	if s.opts.MaxInFlight > 0 {
		g.SetLimit(s.opts.MaxInFlight)
	}

	for v := 1; v <= surah.VersesCount; v++ {
		key := domain.AudioKey{Narrator: narratorID, Surah: surah.ID, Verse: v}
		g.Go(func() error {
			results[v-1] = s.loadVerseAudio(ctx, st, key)
			if err := results[v-1].Err; err != nil {
				log.Debug("verse audio skipped", "key", key.String(), "error", err)
			}
			// Per-verse failures never abort the batch.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *Service) loadVerseAudio(ctx context.Context, st domain.Store, key domain.AudioKey) domain.VerseResult {
	blob, err := s.audio.FetchVerseAudio(ctx, key.Narrator, key.Surah, key.Verse)
	if err != nil {
		return domain.VerseResult{Key: key, Err: err}
	}
	if err := st.PutAudio(ctx, key, blob); err != nil {
		return domain.VerseResult{Key: key, Err: fmt.Errorf("store %s: %w", key, err)}
	}
	return domain.VerseResult{Key: key, Bytes: len(blob)}
}
