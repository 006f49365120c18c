package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/jonathan/resume-builder/internal/cache"
	"github.com/jonathan/resume-builder/internal/logging"
)

// DefaultPageCacheTTL is how long rendered pages stay cached.
const DefaultPageCacheTTL = 24 * time.Hour

// CachedRenderer wraps a Renderer with a cache keyed by URL.
type CachedRenderer struct {
	next  Renderer
	store cache.Store
	ttl   time.Duration
}

// NewCachedRenderer creates a CachedRenderer. A zero ttl uses DefaultPageCacheTTL.
func NewCachedRenderer(next Renderer, store cache.Store, ttl time.Duration) *CachedRenderer {
	if ttl == 0 {
		ttl = DefaultPageCacheTTL
	}
	return &CachedRenderer{next: next, store: store, ttl: ttl}
}

func pageCacheKey(url string) string {
	return "page:" + url
}

// Render implements Renderer. Cache failures fall through to the wrapped renderer.
func (c *CachedRenderer) Render(ctx context.Context, url string) (string, error) {
	logger := logging.FromContext(ctx)

	if data, err := c.store.Get(ctx, pageCacheKey(url)); err == nil {
		return string(data), nil
	} else if !errors.Is(err, cache.ErrMiss) {
		logger.Warn().Err(err).Str("url", url).Msg("page cache read failed")
	}

	html, err := c.next.Render(ctx, url)
	if err != nil {
		return "", err
	}
	if err := c.store.Set(ctx, pageCacheKey(url), []byte(html), c.ttl); err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("page cache write failed")
	}
	return html, nil
}
