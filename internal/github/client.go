// Package github fetches public GitHub profiles and picks the repositories most
// relevant to a job description.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/cache"
	"github.com/jonathan/resume-builder/internal/logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// DefaultTimeout bounds each API request.
	DefaultTimeout = 15 * time.Second
	// DefaultProfileTTL is how long a fetched profile stays cached.
	DefaultProfileTTL = time.Hour
	// DefaultReadmeConcurrency caps parallel README downloads.
	DefaultReadmeConcurrency = 5
	// MaxReadmeBytes caps a single README download.
	MaxReadmeBytes = 1 << 20

	acceptHeader = "application/vnd.github.v3+json"
	reposPerPage = 100
)

// Client talks to the GitHub REST API.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	token             string
	limiter           *rate.Limiter
	cache             cache.Store
	cacheTTL          time.Duration
	readmeConcurrency int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithToken authenticates requests with a personal access token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache caches fetched profiles in store for ttl.
func WithCache(store cache.Store, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.cacheTTL = ttl
	}
}

// WithRateLimit paces outgoing requests.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(limit, burst) }
}

// WithReadmeConcurrency sets how many READMEs are downloaded at once.
func WithReadmeConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.readmeConcurrency = n
		}
	}
}

// NewClient creates a client with defaults: public API, no token, no cache,
// ten requests per second.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:        &http.Client{Timeout: DefaultTimeout},
		baseURL:           DefaultBaseURL,
		limiter:           rate.NewLimiter(rate.Limit(10), 10),
		cacheTTL:          DefaultProfileTTL,
		readmeConcurrency: DefaultReadmeConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func profileCacheKey(username string) string {
	return "github:profile:" + strings.ToLower(username)
}

// FetchProfile loads the user's profile, repositories and README contents.
// The user and repository list are requested concurrently; README failures are
// tolerated and leave ReadmeContent empty.
func (c *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	logger := logging.FromContext(ctx)

	if p, ok := c.cached(ctx, username); ok {
		logger.Debug().Str("username", username).Msg("github profile served from cache")
		return p, nil
	}

	var (
		user  apiUser
		repos []apiRepo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, c.baseURL+"/users/"+url.PathEscape(username), &user)
	})
	g.Go(func() error {
		u := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", c.baseURL, url.PathEscape(username), reposPerPage)
		return c.getJSON(gctx, u, &repos)
	})
	if err := g.Wait(); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Username: username}
		}
		return nil, fmt.Errorf("failed to fetch github data for %s: %w", username, err)
	}

	profile := &Profile{
		User:         user.toUser(),
		Repositories: make([]Repository, len(repos)),
	}
	for i, r := range repos {
		profile.Repositories[i] = r.toRepository()
	}

	c.fetchReadmes(ctx, username, profile.Repositories)

	logger.Info().
		Str("username", username).
		Int("repositories", len(profile.Repositories)).
		Msg("fetched github profile")

	c.store(ctx, username, profile)
	return profile, nil
}

// fetchReadmes fills ReadmeContent in place. Each goroutine writes only its own
// slice element.
func (c *Client) fetchReadmes(ctx context.Context, username string, repos []Repository) {
	logger := logging.FromContext(ctx)

	var g errgroup.Group
	g.SetLimit(c.readmeConcurrency)
	for i := range repos {
		g.Go(func() error {
			content, err := c.readme(ctx, username, repos[i].Name)
			if err != nil {
				logger.Debug().Err(err).Str("repo", repos[i].Name).Msg("readme not available")
				return nil
			}
			repos[i].ReadmeContent = content
			return nil
		})
	}
	_ = g.Wait()
}

func (c *Client) readme(ctx context.Context, owner, repo string) (string, error) {
	var meta apiReadme
	u := fmt.Sprintf("%s/repos/%s/%s/readme", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, u, &meta); err != nil {
		return "", err
	}
	if meta.DownloadURL == "" {
		return "", &APIError{URL: u, Message: "readme has no download URL"}
	}

	body, err := c.get(ctx, meta.DownloadURL, "")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	body, err := c.get(ctx, u, acceptHeader)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{URL: u, Message: "invalid JSON response", Cause: err}
	}
	return nil
}

func (c *Client) get(ctx context.Context, u, accept string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &APIError{URL: u, Message: "rate limiter wait", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &APIError{URL: u, Message: "failed to create request", Cause: err}
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	req.Header.Set("User-Agent", "resume-builder")
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{URL: u, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxReadmeBytes))
	if err != nil {
		return nil, &APIError{URL: u, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{URL: u, StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return body, nil
}

func (c *Client) cached(ctx context.Context, username string) (*Profile, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, err := c.cache.Get(ctx, profileCacheKey(username))
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logging.FromContext(ctx).Warn().Err(err).Msg("github cache read failed")
		}
		return nil, false
	}
	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *Client) store(ctx context.Context, username string, p *Profile) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, profileCacheKey(username), data, c.cacheTTL); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("github cache write failed")
	}
}
