// Package config loads tool configuration from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds provider and storage settings.
type Config struct {
	Provider       string `yaml:"provider"` // upstage (default) or gemini
	UpstageAPIKey  string `yaml:"upstage_api_key,omitempty"`
	GeminiAPIKey   string `yaml:"gemini_api_key,omitempty"`
	Model          string `yaml:"model,omitempty"`
	BaseURL        string `yaml:"base_url,omitempty"`
	DBPath         string `yaml:"db_path,omitempty"`
	CallTimeoutSec int    `yaml:"call_timeout_sec,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: "upstage",
	}
}

// Path returns the config file location (~/.config/thinkflow/config.yaml).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "thinkflow", "config.yaml"), nil
}

// Load reads the config file (if present) and applies environment
// overrides. A missing file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := Path()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("THINKFLOW_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("UPSTAGE_API_KEY"); v != "" {
		c.UpstageAPIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiAPIKey = v
	}
	if v := os.Getenv("THINKFLOW_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("THINKFLOW_DB"); v != "" {
		c.DBPath = v
	}
}

// APIKey returns the key for the selected provider.
func (c *Config) APIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.UpstageAPIKey
}

// ResolveDBPath returns the configured database path, defaulting to
// ~/.thinkflow/sessions.db.
func (c *Config) ResolveDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".thinkflow", "sessions.db")
}
