// Package config loads and saves evm settings and scenario files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all evm configuration.
type Config struct {
	General     GeneralConfig     `toml:"general"`
	Constraints ConstraintsConfig `toml:"constraints"`
	Narrative   NarrativeConfig   `toml:"narrative"`
	Appearance  AppearanceConfig  `toml:"appearance"`
	Server      ServerConfig      `toml:"server"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultPreset  string `toml:"default_preset,omitempty"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// ConstraintsConfig holds default management constraints passed to narrative reports.
type ConstraintsConfig struct {
	DeadlineFixed            bool     `toml:"deadline_fixed"`
	MaxBudgetIncreasePercent *float64 `toml:"max_budget_increase_percent,omitempty"`
}

// NarrativeConfig holds settings for the narrative report client.
type NarrativeConfig struct {
	APIKey    string `toml:"api_key,omitempty"`
	BaseURL   string `toml:"base_url,omitempty"`
	Model     string `toml:"model"`
	MaxTokens int    `toml:"max_tokens"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "$",
		},
		Narrative: NarrativeConfig{
			Model:     "claude-sonnet-4-5",
			MaxTokens: 1024,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8787",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "evm")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "evm")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the fixed config location
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
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetNarrativeAPIKey returns the API key from env var or config, in that order.
func GetNarrativeAPIKey(cfg Config) string {
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	return cfg.Narrative.APIKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
