package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "upstage" {
		t.Errorf("expected upstage default, got %q", cfg.Provider)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := &Config{
		Provider:       "gemini",
		GeminiAPIKey:   "g-key",
		Model:          "gemini-2.0-flash",
		DBPath:         "/tmp/x.db",
		CallTimeoutSec: 30,
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Config
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out != *in {
		t.Errorf("round trip mismatch: %+v vs %+v", out, *in)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("THINKFLOW_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("THINKFLOW_DB", "/tmp/env.db")

	cfg := DefaultConfig()
	cfg.applyEnv()

	if cfg.Provider != "gemini" {
		t.Errorf("provider override ignored: %q", cfg.Provider)
	}
	if cfg.APIKey() != "from-env" {
		t.Errorf("expected gemini key, got %q", cfg.APIKey())
	}
	if cfg.ResolveDBPath() != "/tmp/env.db" {
		t.Errorf("db path override ignored: %q", cfg.ResolveDBPath())
	}
}

func TestAPIKeySelection(t *testing.T) {
	cfg := &Config{Provider: "upstage", UpstageAPIKey: "u", GeminiAPIKey: "g"}
	if cfg.APIKey() != "u" {
		t.Errorf("expected upstage key, got %q", cfg.APIKey())
	}
	cfg.Provider = "gemini"
	if cfg.APIKey() != "g" {
		t.Errorf("expected gemini key, got %q", cfg.APIKey())
	}
}
