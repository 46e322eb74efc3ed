// Package llm is the boundary to the external text-generation service.
// The rest of the system treats every failure from this boundary the
// same way, regardless of cause (timeout, quota, transport), so the
// interface is a single call returning text or an error.
package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when a provider is selected without credentials.
var ErrNoAPIKey = errors.New("api key not configured")

// Generator produces raw text for a rendered prompt. Implementations
// must honor ctx cancellation; callers wrap each call in a timeout.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider string // "upstage" or "gemini"
	APIKey   string
	Model    string
	BaseURL  string
}

// New builds a Generator for the configured provider.
func New(cfg Config) (Generator, error) {
	switch cfg.Provider {
	case "", "upstage":
		c, err := NewUpstageClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "gemini":
		c, err := NewGeminiClient(cfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
