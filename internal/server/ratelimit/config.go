package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig is the budget for one path and method. A Path ending in "/"
// matches every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per Window; zero means unlimited
	Window time.Duration
	Burst  int // defaults to Limit when zero
}

// unlimitedPaths are never rate limited.
var unlimitedPaths = map[string]bool{
	"GET /health": true,
}

// DefaultConfig returns an enabled limiter config with the default endpoint
// budgets and a general limit of 1000 requests per minute.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Model calls and browser scraping are the expensive operations
		{Path: "/generate-resume", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/generate-resume/stream", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
		{Path: "/scrape-linkedin-posts", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/scrape-github", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},

		{Path: "/parse-resume", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/parse-linkedin-pdf", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/structure", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/documents/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// NewIPSet builds a whitelist or blacklist from client IDs, ignoring blanks.
func NewIPSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}

// MatchEndpoint returns the config for path and method, or nil when only the
// default limit applies. Exact paths win over prefixes, and longer prefixes
// win over shorter ones. Unlimited endpoints get a zero-limit config.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	method = strings.ToUpper(method)
	if unlimitedPaths[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if !strings.EqualFold(cfg.Method, method) {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			if best == nil || len(cfg.Path) > len(best.Path) {
				best = cfg
			}
		}
	}
	return best
}
