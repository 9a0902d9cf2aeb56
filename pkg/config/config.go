// Package config loads quotetag configuration: embedded defaults,
// then an optional quotetag.toml (working directory, then XDG config
// dir), then QUOTETAG_* environment variables.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/quotecms/quotetag/pkg/errors"
)

//go:embed quotetag.toml
var defaultConfig []byte

// Config is the resolved quotetag configuration
type Config struct {
	// RulesFile is the keyword→tags rule source (CSV or YAML)
	RulesFile string `koanf:"rules_file"`

	// Database is the SQLite quote database path
	Database string `koanf:"database"`

	// TopTags is the coverage report's top-tags list length
	TopTags int `koanf:"top_tags"`

	// WatchDebounce is the rules watcher debounce, as a duration string
	WatchDebounce string `koanf:"watch_debounce"`
}

// Debounce returns WatchDebounce parsed as a duration, falling back to
// 500ms when unset or unparseable
func (c Config) Debounce() time.Duration {
	d, err := time.ParseDuration(c.WatchDebounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

// rawBytesProvider feeds embedded bytes to koanf
type rawBytesProvider struct {
	bytes []byte
}

func (r *rawBytesProvider) ReadBytes() ([]byte, error) {
	return r.bytes, nil
}

func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

// Load resolves the configuration. A missing config file is fine; a
// present but unparseable one is an error.
func Load() (Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	// 2. First quotetag.toml found: working directory, then XDG config dir
	candidates := []string{
		"quotetag.toml",
		filepath.Join(xdg.ConfigHome, "quotetag", "quotetag.toml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		break
	}

	// 3. Environment: QUOTETAG_RULES_FILE → rules_file
	if err := k.Load(env.Provider("QUOTETAG_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QUOTETAG_"))
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return cfg, nil
}
