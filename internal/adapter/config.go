package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Store      StoreConfig      `mapstructure:"store" yaml:"store" json:"store"`
	Sources    SourcesConfig    `mapstructure:"sources" yaml:"sources" json:"sources"`
	Commentary CommentaryConfig `mapstructure:"commentary" yaml:"commentary" json:"commentary"`
	Audio      AudioConfig      `mapstructure:"audio" yaml:"audio" json:"audio"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" json:"logging"`
}

// StoreConfig holds offline store configuration
type StoreConfig struct {
	Driver      string        `mapstructure:"driver" yaml:"driver" json:"driver"`                   // "bolt" or "sqlite"
	Path        string        `mapstructure:"path" yaml:"path" json:"path"`                         // empty disables the offline cache
	LockTimeout time.Duration `mapstructure:"lock_timeout" yaml:"lock_timeout" json:"lock_timeout"` // wait for the file lock
}

// SourcesConfig holds upstream provider configuration
type SourcesConfig struct {
	AlquranURL    string        `mapstructure:"alquran_url" yaml:"alquran_url" json:"alquran_url"`
	QurancomURL   string        `mapstructure:"qurancom_url" yaml:"qurancom_url" json:"qurancom_url"`
	EveryayahURL  string        `mapstructure:"everyayah_url" yaml:"everyayah_url" json:"everyayah_url"`
	Timeout       time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout"`
	RetryAttempts uint          `mapstructure:"retry_attempts" yaml:"retry_attempts" json:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay" yaml:"retry_delay" json:"retry_delay"`
}

// CommentaryConfig holds commentary preferences
type CommentaryConfig struct {
	Edition         string `mapstructure:"edition" yaml:"edition" json:"edition"`
	MemoryCacheSize int    `mapstructure:"memory_cache_size" yaml:"memory_cache_size" json:"memory_cache_size"`
}

// AudioConfig holds audio preferences
type AudioConfig struct {
	Narrator    string `mapstructure:"narrator" yaml:"narrator" json:"narrator"`
	MaxInFlight int    `mapstructure:"max_in_flight" yaml:"max_in_flight" json:"max_in_flight"` // 0 = whole surah at once
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file" yaml:"file" json:"file"` // empty logs to stderr
	Level string `mapstructure:"level" yaml:"level" json:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:      "bolt",
			Path:        defaultStorePath(),
			LockTimeout: time.Second,
		},
		Sources: SourcesConfig{
			AlquranURL:    "https://api.alquran.cloud",
			QurancomURL:   "https://api.quran.com",
			EveryayahURL:  "https://everyayah.com",
			Timeout:       30 * time.Second,
			RetryAttempts: 3,
			RetryDelay:    500 * time.Millisecond,
		},
		Commentary: CommentaryConfig{
			Edition:         "ar.muyassar",
			MemoryCacheSize: 4096,
		},
		Audio: AudioConfig{
			Narrator:    "alafasy",
			MaxInFlight: 0,
		},
		Logging: LoggingConfig{
			File:  "",
			Level: "INFO",
		},
	}
}

// defaultStorePath returns the default store file path for the current OS
func defaultStorePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "bayan", "offline.db")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "bayan", "offline.db")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "bayan")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "bayan")
	}
}

// DefaultConfigFile is where SaveConfig writes when no path is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// setDefaults registers every key so environment overrides reach nested fields.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("store.driver", cfg.Store.Driver)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.lock_timeout", cfg.Store.LockTimeout)

	v.SetDefault("sources.alquran_url", cfg.Sources.AlquranURL)
	v.SetDefault("sources.qurancom_url", cfg.Sources.QurancomURL)
	v.SetDefault("sources.everyayah_url", cfg.Sources.EveryayahURL)
	v.SetDefault("sources.timeout", cfg.Sources.Timeout)
	v.SetDefault("sources.retry_attempts", cfg.Sources.RetryAttempts)
	v.SetDefault("sources.retry_delay", cfg.Sources.RetryDelay)

	v.SetDefault("commentary.edition", cfg.Commentary.Edition)
	v.SetDefault("commentary.memory_cache_size", cfg.Commentary.MemoryCacheSize)

	v.SetDefault("audio.narrator", cfg.Audio.Narrator)
	v.SetDefault("audio.max_in_flight", cfg.Audio.MaxInFlight)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// LoadConfig loads configuration from file and environment.
// An explicit cfgFile must exist; otherwise ./config.yaml and the user
// config directory are searched and a missing file means defaults.
func LoadConfig(cfgFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(defaultConfigPath())
	}

	// Environment variable overrides, e.g. BAYAN_STORE_PATH
	v.SetEnvPrefix("BAYAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.Store.Path = ExpandPath(cfg.Store.Path)
	cfg.Logging.File = ExpandPath(cfg.Logging.File)

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path (DefaultConfigFile when empty)
func SaveConfig(cfg *Config, path string) (string, error) {
	if path == "" {
		path = DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, cfg)
	// Durations are written in their human form so the file round-trips.
	v.Set("store.lock_timeout", cfg.Store.LockTimeout.String())
	v.Set("sources.timeout", cfg.Sources.Timeout.String())
	v.Set("sources.retry_delay", cfg.Sources.RetryDelay.String())

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

// ExpandPath replaces a leading ~ with the user's home directory
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
