// Package config loads tool configuration by layering defaults, an
// optional YAML file, and VELOCITY_-prefixed environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds process configuration.
type Config struct {
	// DBPath locates the SQLite database file.
	DBPath string `koanf:"db_path"`

	// WeekCount is the default lookback window, in weeks, when the
	// -w flag is omitted.
	WeekCount int `koanf:"week_count"`

	// NoColor disables styled output even on a terminal.
	NoColor bool `koanf:"no_color"`
}

// Defaults returns the built-in configuration. The database lives under
// ~/.velocity like the config file itself.
func Defaults() Config {
	cfg := Config{WeekCount: 4}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".velocity", "velocity.db")
	} else {
		cfg.DBPath = "velocity.db"
	}
	return cfg
}

// Load builds a Config by layering, lowest precedence first:
//  1. Defaults()
//  2. YAML file at VELOCITY_CONFIG, or ~/.velocity/config.yaml if present
//  3. environment variables (VELOCITY_DB_PATH, VELOCITY_WEEK_COUNT, ...)
func Load() (Config, error) {
	cfg := Defaults()

	k := koanf.New(".")

	path := os.Getenv("VELOCITY_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".velocity", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return cfg, err
		}
	}

	// VELOCITY_DB_PATH -> db_path; underscores are kept so keys match
	// the koanf tags on the struct.
	envProvider := env.Provider("VELOCITY_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "velocity_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return cfg, err
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, err
	}
	return cfg, nil
}
