// Package config loads runtime settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	// DBPath is the SQLite file. Empty means ~/.vista/vista.db.
	DBPath string `env:"VISTA_DB"`
	// RedisAddr switches saved filters to Redis when set.
	RedisAddr      string        `env:"VISTA_REDIS_ADDR"`
	RedisDB        int           `env:"VISTA_REDIS_DB"        envDefault:"0"`
	ExportDir      string        `env:"VISTA_EXPORT_DIR"      envDefault:"."`
	Theme          string        `env:"VISTA_THEME"           envDefault:"light"`
	LogLevel       string        `env:"VISTA_LOG_LEVEL"       envDefault:"warn"`
	LogUseCases    bool          `env:"VISTA_LOG_USE_CASES"`
	Addr           string        `env:"VISTA_ADDR"            envDefault:"127.0.0.1:8080"`
	SearchDebounce time.Duration `env:"VISTA_SEARCH_DEBOUNCE" envDefault:"300ms"`
}

// Load reads the process environment. Variables found in dotenvPaths fill in
// anything the environment leaves unset; missing files are skipped.
func Load(dotenvPaths ...string) (Config, error) {
	vars := environ()
	for _, p := range dotenvPaths {
		fileVars, err := godotenv.Read(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("reading %s: %w", p, err)
		}
		for k, v := range fileVars {
			if _, set := vars[k]; !set {
				vars[k] = v
			}
		}
	}
	return LoadFrom(vars)
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		p, err := DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme != "light" && c.Theme != "dark" {
		return fmt.Errorf("VISTA_THEME: want light or dark, got %q", c.Theme)
	}
	if c.SearchDebounce < 0 {
		return fmt.Errorf("VISTA_SEARCH_DEBOUNCE must not be negative, got %s", c.SearchDebounce)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("VISTA_LOG_LEVEL: %w", err)
	}
	return nil
}

// Dark reports whether the dark palette is the default.
func (c Config) Dark() bool { return c.Theme == "dark" }

// Logger returns a zerolog logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// DefaultDBPath returns ~/.vista/vista.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".vista", "vista.db"), nil
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			out[k] = v
		}
	}
	return out
}
