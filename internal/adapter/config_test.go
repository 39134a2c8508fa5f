package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Store.Driver)
	assert.Equal(t, time.Second, cfg.Store.LockTimeout)
	assert.Equal(t, "ar.muyassar", cfg.Commentary.Edition)
	assert.Equal(t, 4096, cfg.Commentary.MemoryCacheSize)
	assert.Equal(t, "alafasy", cfg.Audio.Narrator)
	assert.Equal(t, uint(3), cfg.Sources.RetryAttempts)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bayan.yaml")
	body := `
store:
  driver: sqlite
  path: /tmp/bayan-test.db
sources:
  timeout: 5s
  retry_delay: 50ms
commentary:
  edition: ar.jalalayn
audio:
  max_in_flight: 8
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/tmp/bayan-test.db", cfg.Store.Path)
	assert.Equal(t, 5*time.Second, cfg.Sources.Timeout)
	assert.Equal(t, 50*time.Millisecond, cfg.Sources.RetryDelay)
	assert.Equal(t, "ar.jalalayn", cfg.Commentary.Edition)
	assert.Equal(t, 8, cfg.Audio.MaxInFlight)
	// untouched keys keep their defaults
	assert.Equal(t, "https://api.alquran.cloud", cfg.Sources.AlquranURL)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BAYAN_STORE_PATH", "/var/lib/bayan/cache.db")
	t.Setenv("BAYAN_AUDIO_NARRATOR", "husary")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/bayan/cache.db", cfg.Store.Path)
	assert.Equal(t, "husary", cfg.Audio.Narrator)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store.Path = "/tmp/roundtrip.db"
	cfg.Audio.MaxInFlight = 4

	path, err := SaveConfig(cfg, filepath.Join(t.TempDir(), "sub", "config.yaml"))
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "bayan.db"), ExpandPath("~/bayan.db"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bayan.log")
	logger, closer, err := SetupLogger(&LoggingConfig{File: path, Level: "debug"})
	require.NoError(t, err)

	logger.Info("hello", "surah", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"surah":1`)
}
