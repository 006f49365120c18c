package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(cfg *Config) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg.CleanupInterval = 0
	l := NewLimiter(cfg)
	l.now = clock.Now
	return l, clock
}

func TestLimiter_Allow(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 5, DefaultWindow: 5 * time.Second})

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("1.2.3.4", "/documents", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 5, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}

	allowed, info := l.Allow("1.2.3.4", "/documents", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, time.Second, info.RetryAfter)

	clock.Advance(time.Second)
	allowed, _ = l.Allow("1.2.3.4", "/documents", "GET")
	assert.True(t, allowed, "one token refilled after a second")

	allowed, _ = l.Allow("5.6.7.8", "/documents", "GET")
	assert.True(t, allowed, "clients have separate buckets")
}

func TestLimiter_ResetTime(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: 10 * time.Second})

	for i := 0; i < 4; i++ {
		l.Allow("c", "/x", "GET")
	}
	_, info := l.Allow("c", "/x", "GET")
	assert.Equal(t, 5, info.Remaining)
	assert.Equal(t, clock.Now().Add(5*time.Second), info.ResetTime)
}

func TestLimiter_WhitelistBlacklist(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     map[string]bool{"10.0.0.2": true},
	})

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/structure", "POST")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("10.0.0.2", "/health", "GET")
	assert.False(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: false, DefaultLimit: 1, DefaultWindow: time.Hour})
	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("c", "/generate-resume", "POST")
		assert.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	l, _ := newTestLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})

	tests := []struct {
		name     string
		path     string
		method   string
		requests int
		validate func(*testing.T, []bool)
	}{
		{
			name:     "generation has a burst of three",
			path:     "/generate-resume",
			method:   "POST",
			requests: 4,
			validate: func(t *testing.T, got []bool) {
				assert.Equal(t, []bool{true, true, true, false}, got)
			},
		},
		{
			name:     "document deletes share a prefix bucket",
			path:     "",
			method:   "DELETE",
			requests: 11,
			validate: func(t *testing.T, got []bool) {
				assert.True(t, got[9])
				assert.False(t, got[10])
			},
		},
		{
			name:     "health is unlimited",
			path:     "/health",
			method:   "GET",
			requests: 2000,
			validate: func(t *testing.T, got []bool) {
				for _, ok := range got {
					require.True(t, ok)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]bool, tt.requests)
			for i := range got {
				path := tt.path
				if path == "" {
					path = fmt.Sprintf("/documents/%d", i)
				}
				got[i], _ = l.Allow("client", path, tt.method)
			}
			tt.validate(t, got)
		})
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(&Config{Enabled: true, DefaultLimit: 100, DefaultWindow: time.Hour})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("c", "/x", "GET"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, allowed)
}

func TestLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(&Config{Enabled: true, DefaultLimit: 10, DefaultWindow: time.Minute})

	l.Allow("old", "/x", "GET")
	clock.Advance(2 * time.Hour)
	l.Allow("new", "/x", "GET")

	l.cleanupBuckets()
	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.buckets, 1)
	_, ok := l.buckets["new:*:GET"]
	assert.True(t, ok)
}

func TestNewLimiter_NilConfig(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("c", "/documents", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 1000, info.Limit)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.NotEmpty(t, cfg.EndpointConfigs)
	assert.Empty(t, cfg.Whitelist)
}

func TestNewIPSet(t *testing.T) {
	set := NewIPSet([]string{"1.1.1.1", " 2.2.2.2 ", "", "  "})
	assert.Len(t, set, 2)
	assert.True(t, set["2.2.2.2"])
}

func TestMatchEndpoint(t *testing.T) {
	configs := append(DefaultEndpointConfigs(),
		EndpointConfig{Path: "/documents/archive/", Method: "DELETE", Limit: 1, Window: time.Hour},
	)

	tests := []struct {
		name     string
		path     string
		method   string
		expected string
		limit    int
	}{
		{name: "exact", path: "/structure", method: "POST", expected: "/structure", limit: 120},
		{name: "lower-case method", path: "/structure", method: "post", expected: "/structure", limit: 120},
		{name: "exact beats prefix", path: "/generate-resume/stream", method: "POST", expected: "/generate-resume/stream", limit: 20},
		{name: "prefix", path: "/documents/abc", method: "DELETE", expected: "/documents/", limit: 60},
		{name: "longest prefix", path: "/documents/archive/abc", method: "DELETE", expected: "/documents/archive/", limit: 1},
		{name: "health is unlimited", path: "/health", method: "GET", expected: "/health", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got.Path)
			assert.Equal(t, tt.limit, got.Limit)
		})
	}

	assert.Nil(t, MatchEndpoint("/documents/abc", "GET", configs))
	assert.Nil(t, MatchEndpoint("/unknown", "POST", configs))
}
