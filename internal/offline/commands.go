package offline

import (
	"context"
	"fmt"

	"github.com/albayan/bayan/internal/domain"
)

// LoadFullScripture downloads the whole scripture document and stores every
// surah and page in one transaction. Nothing is written unless the document
// was fetched completely.
func (s *Service) LoadFullScripture(ctx context.Context, progress domain.ProgressFunc) error {
	progress.Report(domain.Progress{Message: "Connecting to the offline store..."})
	st, err := s.store.Open(ctx)
	if err != nil {
		s.logger.Error("scripture load failed", "error", err)
		return err
	}

	progress.Report(domain.Progress{Message: "Downloading the full scripture (this may take a moment)..."})
	corpus, err := s.scripture.FetchCorpus(ctx)
	if err != nil {
		s.logger.Error("failed to fetch scripture corpus", "error", err)
		return err
	}
	if err := domain.ValidateCorpus(corpus); err != nil {
		s.logger.Error("rejected scripture corpus", "error", err)
		return err
	}

	progress.Report(domain.Progress{Message: "Processing and storing the scripture..."})
	surahs := domain.SurahRecords(corpus)
	pages := domain.PageRecords(corpus)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := st.SaveScripture(ctx, surahs, pages); err != nil {
		s.logger.Error("failed to save scripture", "error", err)
		return fmt.Errorf("failed to save scripture: %w", err)
	}

	s.logger.Info("scripture cached", "surahs", len(surahs), "pages", len(pages))
	progress.Report(domain.Progress{
		Message: fmt.Sprintf("Stored %d surahs and %d pages", len(surahs), len(pages)),
		Done:    len(surahs),
		Total:   len(surahs),
	})
	return nil
}

// LoadFullCommentary downloads the configured commentary edition and stores
// one record per surah in one transaction, replacing any other edition.
func (s *Service) LoadFullCommentary(ctx context.Context, progress domain.ProgressFunc) error {
	edition := s.opts.Edition

	progress.Report(domain.Progress{Message: "Connecting to the offline store..."})
	st, err := s.store.Open(ctx)
	if err != nil {
		s.logger.Error("commentary load failed", "error", err)
		return err
	}

	progress.Report(domain.Progress{Message: fmt.Sprintf("Downloading commentary %s...", edition)})
	records, err := s.commentary.FetchCommentaryCorpus(ctx, edition)
	if err != nil {
		s.logger.Error("failed to fetch commentary corpus", "edition", edition, "error", err)
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: commentary %s is empty", domain.ErrMalformedContent, edition)
	}

	progress.Report(domain.Progress{Message: "Storing the commentary..."})
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := st.SaveCommentary(ctx, edition, records); err != nil {
		s.logger.Error("failed to save commentary", "edition", edition, "error", err)
		return fmt.Errorf("failed to save commentary: %w", err)
	}

	s.logger.Info("commentary cached", "edition", edition, "surahs", len(records))
	progress.Report(domain.Progress{
		Message: fmt.Sprintf("Stored commentary for %d surahs", len(records)),
		Done:    len(records),
		Total:   len(records),
	})
	return nil
}
