// Package config loads and saves alcancia configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alcancia-dev/alcancia/internal/format"

	"github.com/BurntSushi/toml"
)

// Config holds all alcancia configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Currency   CurrencyConfig   `toml:"currency"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// CurrencyConfig holds the display convention for monetary amounts.
type CurrencyConfig struct {
	Symbol       string `toml:"symbol"`
	ThousandsSep string `toml:"thousands_sep"`
	DecimalSep   string `toml:"decimal_sep"`
	Decimals     int    `toml:"decimals"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme            string `toml:"theme"`
	DefaultGoalColor string `toml:"default_goal_color,omitempty"`
}

// DefaultConfig returns the default configuration (Chilean peso convention).
func DefaultConfig() Config {
	return Config{
		Currency: CurrencyConfig{
			Symbol:       "$",
			ThousandsSep: ".",
			DecimalSep:   ",",
			Decimals:     0,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Money builds the display formatter from the configured convention.
func Money(cfg Config) format.Money {
	return format.Money{
		Symbol:       cfg.Currency.Symbol,
		ThousandsSep: cfg.Currency.ThousandsSep,
		DecimalSep:   cfg.Currency.DecimalSep,
		Decimals:     cfg.Currency.Decimals,
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "alcancia")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "alcancia")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory for the goals database: the configured
// data_dir when set, else the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "alcancia")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "alcancia")
}

// DBPath returns the full path to the goals database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "goals.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
