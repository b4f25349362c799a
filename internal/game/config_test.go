package game

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WorldWidth != 40 || cfg.WorldHeight != 30 {
		t.Errorf("world = %dx%d, want 40x30", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("VALDMIR_SEED", "1234")
	t.Setenv("VALDMIR_LOCALE_DIR", "/tmp/locales")
	t.Setenv("VALDMIR_LANG", "de")
	t.Setenv("VALDMIR_LOG_FILE", "valdmir.log")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv() error = %v", err)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.LocaleDir != "/tmp/locales" || cfg.Language != "de" {
		t.Errorf("LocaleDir, Language = %q, %q", cfg.LocaleDir, cfg.Language)
	}
	if cfg.LogFile != "valdmir.log" || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %q, %q, %q", cfg.LogFile, cfg.LogLevel, cfg.LogFormat)
	}
}

func TestConfigFromEnvBadSeed(t *testing.T) {
	t.Setenv("VALDMIR_SEED", "not-a-number")
	if _, err := ConfigFromEnv(); err == nil {
		t.Error("ConfigFromEnv() error = nil, want parse error")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := (Config{Seed: 7}).ResolveSeed(); got != 7 {
		t.Errorf("ResolveSeed() = %d, want 7", got)
	}
	if got := (Config{}).ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() = 0 for an unset seed")
	}
}

func TestCatalogFallsBackToFormat(t *testing.T) {
	c := newCatalog("", "en")
	if got, want := c.T("You found %d gold in the chest!", 12), "You found 12 gold in the chest!"; got != want {
		t.Errorf("T() = %q, want %q", got, want)
	}
	if got, want := c.T("Not enough gold."), "Not enough gold."; got != want {
		t.Errorf("T() = %q, want %q", got, want)
	}
}
