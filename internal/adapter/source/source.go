package source

import (
	"log/slog"

	"github.com/albayan/bayan/internal/adapter"
	"github.com/albayan/bayan/internal/adapter/source/alquran"
	"github.com/albayan/bayan/internal/adapter/source/everyayah"
	"github.com/albayan/bayan/internal/adapter/source/httpx"
	"github.com/albayan/bayan/internal/adapter/source/qurancom"
	"github.com/albayan/bayan/internal/domain"
)

// Sources bundles every upstream content provider the application uses.
type Sources struct {
	Scripture        domain.ScriptureSource
	CommentaryCorpus domain.CommentaryCorpusSource
	// Commentary providers in the order they are tried
	Commentary []domain.CommentaryProvider
	Audio      domain.AudioSource
}

// New builds all providers over one shared HTTP transport.
func New(cfg adapter.SourcesConfig, logger *slog.Logger) *Sources {
	if logger == nil {
		logger = slog.Default()
	}

	transport := httpx.New(httpx.Options{
		Timeout:  cfg.Timeout,
		Attempts: cfg.RetryAttempts,
		Delay:    cfg.RetryDelay,
	}, logger)

	aq := alquran.NewClient(cfg.AlquranURL, transport, logger)
	qc := qurancom.NewClient(cfg.QurancomURL, transport, logger)
	ea := everyayah.NewClient(cfg.EveryayahURL, transport, logger)

	return &Sources{
		Scripture:        aq,
		CommentaryCorpus: aq,
		Commentary:       []domain.CommentaryProvider{aq, qc},
		Audio:            ea,
	}
}

// NewFromConfig builds all providers from the application config
func NewFromConfig(cfg *adapter.Config, logger *slog.Logger) *Sources {
	return New(cfg.Sources, logger)
}
