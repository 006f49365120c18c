// Package llm provides LLM configuration and client abstractions used for
// resume text generation.
package llm

import (
	"fmt"
	"time"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short, cheap completions
	TierLite ModelTier = "lite"
	// TierStandard is the default tier for resume generation
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long prompts with many profile sources
	TierAdvanced ModelTier = "advanced"
)

// tierFallback is the lookup order for a tier with no model of its own.
var tierFallback = []ModelTier{TierStandard, TierLite, TierAdvanced}

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// Config holds the model configuration for the application
type Config struct {
	Provider        Provider
	Models          map[ModelTier]string
	Temperature     float32
	MaxOutputTokens int32
	// Timeout bounds each model call; zero leaves it to the caller's context.
	Timeout time.Duration
	// MaxRetries is how many times a rate-limited or unavailable call is retried.
	MaxRetries int
	// RetryBackoff is the delay before the first retry; it doubles each time.
	RetryBackoff time.Duration
}

// DefaultConfig returns the Gemini configuration used for resume generation.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature:     0.7,
		MaxOutputTokens: 4000,
		Timeout:         90 * time.Second,
		MaxRetries:      2,
		RetryBackoff:    time.Second,
	}
}

// GetModel returns the model name for tier, falling back through the other
// tiers when it has none.
func (c *Config) GetModel(tier ModelTier) string {
	if model := c.Models[tier]; model != "" {
		return model
	}
	for _, t := range tierFallback {
		if model := c.Models[t]; model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with model set for tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := *c
	out.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return &out
}

// Validate reports settings the client cannot work with.
func (c *Config) Validate() error {
	if c.GetModel(TierStandard) == "" {
		return fmt.Errorf("llm config: no model configured")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("llm config: temperature %.2f out of range [0, 2]", c.Temperature)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("llm config: negative max retries")
	}
	return nil
}
