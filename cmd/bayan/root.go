package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/albayan/bayan/internal/adapter"
	"github.com/albayan/bayan/internal/adapter/source"
	"github.com/albayan/bayan/internal/fallback"
	"github.com/albayan/bayan/internal/offline"
	"github.com/albayan/bayan/internal/resolver"
	"github.com/albayan/bayan/internal/store"
)

var (
	cfgFile      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "bayan",
	Short: "Offline scripture, commentary and recitation cache",
	Long: `Bayan keeps the Quran text, one commentary edition and per-verse
recitations on this machine so they can be read without a connection.

Reads try the offline store first, then the bundled pages, then the
network. Downloads fill the store; clear empties it again.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setOutputFormat(outputFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.config/bayan/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, yaml or json",
	)

	rootCmd.AddCommand(downloadCmd, statusCmd, clearCmd, readCmd, narratorsCmd, surahsCmd, configCmd, versionCmd)
}

// app holds the services one command invocation needs.
type app struct {
	cfg      *adapter.Config
	logger   *slog.Logger
	handle   *store.Handle
	sources  *source.Sources
	offline  *offline.Service
	resolver *resolver.Service
	closers  []io.Closer
}

// newApp loads configuration and wires the services. The store is opened
// lazily by the first operation that needs it.
func newApp() (*app, error) {
	cfg, err := adapter.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		logger, logCloser = adapter.NullLogger(), nil
	}
	slog.SetDefault(logger)
	logger.Debug("starting bayan", "version", Version, "store", cfg.Store.Path)

	handle := store.NewHandle(store.Options{
		Driver:  store.Driver(cfg.Store.Driver),
		Path:    cfg.Store.Path,
		Timeout: cfg.Store.LockTimeout,
	}, logger)

	sources := source.NewFromConfig(cfg, logger)

	offlineSvc := offline.NewService(handle, sources.Scripture, sources.CommentaryCorpus, sources.Audio, offline.Options{
		Edition:     cfg.Commentary.Edition,
		MaxInFlight: cfg.Audio.MaxInFlight,
	}, logger)

	static, err := fallback.Load()
	if err != nil {
		logger.Warn("bundled pages unavailable", "error", err)
	}
	var staticLayer resolver.Static
	if static != nil {
		staticLayer = static
	}

	resolverSvc, err := resolver.NewService(offlineSvc, staticLayer, sources.Scripture, sources.Commentary, resolver.Options{
		MemoryCacheSize: cfg.Commentary.MemoryCacheSize,
	}, logger)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		handle:   handle,
		sources:  sources,
		offline:  offlineSvc,
		resolver: resolverSvc,
		closers:  []io.Closer{handle},
	}
	if logCloser != nil {
		a.closers = append(a.closers, logCloser)
	}
	return a, nil
}

// Close releases the store and the log file.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// withApp wraps a command body with app setup and teardown.
func withApp(run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return run(cmd, a, args)
	}
}
