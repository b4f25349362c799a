package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible worlds.
	// A seed of 0 means a time-based seed will be chosen.
	Seed int64

	// SessionID tags logs and traces. Empty means a fresh UUID.
	SessionID string

	WorldWidth  int
	WorldHeight int

	// LocaleDir and Language select a gettext catalogue for event text.
	// An empty LocaleDir keeps the built-in English strings.
	LocaleDir string
	Language  string

	LogLevel  string
	LogFormat string
	// LogFile receives log output. Empty discards logs, since stdout
	// belongs to the terminal UI.
	LogFile string
}

// DefaultConfig returns the standard 40x30 world with English text.
func DefaultConfig() Config {
	return Config{
		WorldWidth:  world.DefaultWorldWidth,
		WorldHeight: world.DefaultWorldHeight,
		Language:    "en",
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// ConfigFromEnv overlays VALDMIR_* and LOG_* environment variables on the defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("VALDMIR_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("parse VALDMIR_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("VALDMIR_LOCALE_DIR"); v != "" {
		cfg.LocaleDir = v
	}
	if v := os.Getenv("VALDMIR_LANG"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("VALDMIR_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return cfg, nil
}

// ResolveSeed returns the configured seed, or a time-based one when it is 0.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
