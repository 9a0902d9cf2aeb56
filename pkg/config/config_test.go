package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/quotecms/quotetag/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no quotetag.toml is picked up
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "data/auto-tag-keywords.csv", cfg.RulesFile)
	assert.Equal(t, "quotetag.db", cfg.Database)
	assert.Equal(t, 10, cfg.TopTags)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
}

func TestLoadFromFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, os.WriteFile("quotetag.toml", []byte(
		"rules_file = \"rules.yaml\"\ntop_tags = 5\n"), 0644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "rules.yaml", cfg.RulesFile)
	assert.Equal(t, 5, cfg.TopTags)
	// Unset keys keep defaults
	assert.Equal(t, "quotetag.db", cfg.Database)
}

func TestLoadFromEnv(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("QUOTETAG_RULES_FILE", "/etc/quotetag/keywords.csv")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/quotetag/keywords.csv", cfg.RulesFile)
}

func TestDebounceFallback(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, config.Config{WatchDebounce: "bogus"}.Debounce())
	assert.Equal(t, 2*time.Second, config.Config{WatchDebounce: "2s"}.Debounce())
}
