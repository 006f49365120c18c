package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.InDelta(t, 0.7, config.Temperature, 1e-6)
	assert.Equal(t, int32(4000), config.MaxOutputTokens)
	assert.Equal(t, 90*time.Second, config.Timeout)
	assert.NoError(t, config.Validate())
}

func TestGetModel(t *testing.T) {
	tests := []struct {
		name     string
		models   map[ModelTier]string
		tier     ModelTier
		expected string
	}{
		{name: "own tier", models: map[ModelTier]string{TierAdvanced: "pro"}, tier: TierAdvanced, expected: "pro"},
		{name: "falls back to standard", models: map[ModelTier]string{TierStandard: "flash", TierLite: "lite"}, tier: "unknown", expected: "flash"},
		{name: "falls back to lite", models: map[ModelTier]string{TierLite: "lite"}, tier: TierAdvanced, expected: "lite"},
		{name: "empty name is skipped", models: map[ModelTier]string{TierLite: "", TierAdvanced: "pro"}, tier: TierLite, expected: "pro"},
		{name: "nothing configured", models: map[ModelTier]string{}, tier: TierStandard, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{Provider: ProviderGemini, Models: tt.models}
			assert.Equal(t, tt.expected, config.GetModel(tt.tier))
		})
	}
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierAdvanced, "custom-model")

	assert.Equal(t, "gemini-2.5-pro", config.GetModel(TierAdvanced))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierAdvanced))
	assert.Equal(t, "gemini-2.5-flash-lite", newConfig.GetModel(TierLite))
	assert.Equal(t, config.MaxOutputTokens, newConfig.MaxOutputTokens)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "no models", mutate: func(c *Config) { c.Models = nil }, wantErr: "no model configured"},
		{name: "temperature too high", mutate: func(c *Config) { c.Temperature = 2.5 }, wantErr: "temperature"},
		{name: "negative retries", mutate: func(c *Config) { c.MaxRetries = -1 }, wantErr: "negative max retries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(context.Background(), nil, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	_, err = NewClient(context.Background(), &Config{Provider: "openai", Models: map[ModelTier]string{TierStandard: "gpt"}}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")

	_, err = NewClient(context.Background(), &Config{Provider: ProviderGemini}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model configured")
}
