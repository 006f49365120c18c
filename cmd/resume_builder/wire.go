package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/cache"
	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/github"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"golang.org/x/time/rate"
)

// newCache connects to Redis when configured and otherwise returns an
// in-process cache.
func newCache(ctx context.Context) (cache.Store, error) {
	if cfg.Redis.URL == "" {
		logging.FromContext(ctx).Info().Msg("using in-memory cache")
		return cache.NewMemoryStore(), nil
	}
	store, err := cache.NewRedisStore(ctx, cfg.Redis.URL, cfg.Redis.Prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return store, nil
}

func newIngester(ctx context.Context) (*ingestion.Ingester, error) {
	ingester, err := ingestion.NewIngester(ctx, ingestion.WithMaxBytes(cfg.Server.MaxUploadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create ingester: %w", err)
	}
	return ingester, nil
}

func newGitHubClient(store cache.Store) *github.Client {
	burst := int(cfg.GitHub.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}
	opts := []github.Option{
		github.WithRateLimit(rate.Limit(cfg.GitHub.RequestsPerSecond), burst),
		github.WithCache(store, cfg.GitHub.CacheTTL()),
	}
	if cfg.GitHub.Token != "" {
		opts = append(opts, github.WithToken(cfg.GitHub.Token))
	}
	if cfg.GitHub.BaseURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHub.BaseURL))
	}
	return github.NewClient(opts...)
}

// newPostScraper builds the renderer chain: plain HTTP first, headless Chrome
// when the page is script-rendered, rendered pages cached.
func newPostScraper(store cache.Store) *fetch.PostScraper {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Scrape.Timeout()

	var renderer fetch.Renderer = fetch.HTTPRenderer{Options: opts}
	if cfg.Scrape.UseBrowser {
		renderer = fetch.FallbackRenderer{
			Primary:   renderer,
			Secondary: fetch.BrowserRenderer{Timeout: cfg.Scrape.Timeout()},
		}
	}
	renderer = fetch.NewCachedRenderer(renderer, store, cfg.Scrape.CacheTTL())
	return fetch.NewPostScraper(renderer, cfg.Scrape.Concurrency)
}

func newLLMClient(ctx context.Context) (llm.Client, error) {
	if cfg.LLM.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for generation")
	}
	client, err := llm.NewClient(ctx, cfg.LLM.ClientConfig(), cfg.LLM.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}
