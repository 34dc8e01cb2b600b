package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	withTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no file: %v", err)
	}
	if cfg.Currency.Symbol != "$" || cfg.Currency.ThousandsSep != "." || cfg.Currency.Decimals != 0 {
		t.Errorf("default currency = %+v, want CLP convention", cfg.Currency)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("default theme = %q", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	withTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "terminal"
	cfg.Appearance.DefaultGoalColor = "#4385BE"
	cfg.Currency.Symbol = "US$"
	cfg.Currency.Decimals = 2

	if err := Save(cfg); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if got.Appearance.Theme != "terminal" {
		t.Errorf("theme = %q, want terminal", got.Appearance.Theme)
	}
	if got.Currency.Symbol != "US$" || got.Currency.Decimals != 2 {
		t.Errorf("currency = %+v", got.Currency)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	withTempConfigHome(t)

	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() on corrupt file should error")
	}
}

func TestDataDirOverride(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "alcancia") {
		t.Errorf("DataDir(default) = %q", got)
	}

	cfg.General.DataDir = "/srv/goals"
	if got := DataDir(cfg); got != "/srv/goals" {
		t.Errorf("DataDir(override) = %q", got)
	}
	if got := DBPath(cfg); got != filepath.Join("/srv/goals", "goals.db") {
		t.Errorf("DBPath = %q", got)
	}
}
