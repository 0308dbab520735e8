package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/carousel"
)

func TestLoadDefaults(t *testing.T) {
	useSearchDirs(t, t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, carousel.DefaultInterval, cfg.Interval)
	assert.Equal(t, carousel.DefaultTransitionDuration, cfg.TransitionDuration)
	assert.True(t, cfg.AutoAdvance)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.Deck)
	assert.Len(t, cfg.Options(), 3)
}

func useSearchDirs(t *testing.T, dirs ...string) {
	t.Helper()
	prev := searchDirs
	searchDirs = func() []string { return dirs }
	t.Cleanup(func() { searchDirs = prev })
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	useSearchDirs(t, t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	assert.Error(t, err)
}

func TestLoadSearchMissIsNotAnError(t *testing.T) {
	useSearchDirs(t, t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, carousel.DefaultInterval, cfg.Interval)
}

func TestLoadSearchFindsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "carousel.yaml"), []byte("interval: 7s\n"), 0o600))
	useSearchDirs(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 7*time.Second, cfg.Interval)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carousel.yml")
	body := "interval: 2s\nauto-advance: false\ndeck: products.yaml\nlog-level: DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("CAROUSEL_LOG_LEVEL", "WARN")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--transition-duration=300ms"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 300*time.Millisecond, cfg.TransitionDuration)
	assert.False(t, cfg.AutoAdvance)
	assert.Equal(t, "products.yaml", cfg.Deck)
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("CAROUSEL_INTERVAL", "0s")
	useSearchDirs(t, t.TempDir())
	_, err := Load("", nil)
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("interval: [\n"), 0o600))

	_, err := Load(path, nil)
	assert.Error(t, err)
}
