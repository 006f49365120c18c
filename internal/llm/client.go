package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/jonathan/resume-builder/internal/logging"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
	sleep  func(context.Context, time.Duration) error
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
		sleep:  sleepContext,
	}, nil
}

// GenerateContent sends prompt to the tier's model. Rate-limited and
// unavailable responses are retried with exponential backoff.
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.Temperature)
	if c.config.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(c.config.MaxOutputTokens)
	}

	logger := logging.FromContext(ctx)
	backoff := c.config.RetryBackoff
	for attempt := 0; ; attempt++ {
		resp, err := c.call(ctx, model, prompt)
		if err == nil {
			if usage := resp.UsageMetadata; usage != nil {
				logger.Debug().
					Str("model", modelName).
					Int32("prompt_tokens", usage.PromptTokenCount).
					Int32("output_tokens", usage.CandidatesTokenCount).
					Msg("model call finished")
			}
			return extractText(modelName, resp)
		}

		if attempt >= c.config.MaxRetries || !retryable(err) {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		logger.Warn().Err(err).Str("model", modelName).Int("attempt", attempt+1).
			Dur("backoff", backoff).Msg("retrying model call")
		if err := c.sleep(ctx, backoff); err != nil {
			return "", err
		}
		backoff *= 2
	}
}

func (c *GeminiClient) call(ctx context.Context, model *genai.GenerativeModel, prompt string) (*genai.GenerateContentResponse, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}
	return model.GenerateContent(ctx, genai.Text(prompt))
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// retryable reports whether err is a rate limit or a transient server error.
func retryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusBadGateway, http.StatusServiceUnavailable:
		return true
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// extractText joins the text parts of the first candidate.
func extractText(model string, resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", &ResponseError{Model: model, Reason: "empty response"}
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != genai.BlockReasonUnspecified {
		return "", &ResponseError{Model: model, Reason: "prompt blocked: " + fb.BlockReason.String()}
	}
	if len(resp.Candidates) == 0 {
		return "", &ResponseError{Model: model, Reason: "no candidates"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &ResponseError{Model: model, Reason: "no content, finish reason " + candidate.FinishReason.String()}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &ResponseError{Model: model, Reason: "no text parts"}
	}
	return sb.String(), nil
}
