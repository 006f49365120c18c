// Package config loads service configuration from a YAML or JSON file with
// environment overrides.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Every field has a default, so a
// config file is optional.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Database  DatabaseConfig  `json:"database" yaml:"database"`
	Redis     RedisConfig     `json:"redis" yaml:"redis"`
	LLM       LLMConfig       `json:"llm" yaml:"llm"`
	GitHub    GitHubConfig    `json:"github" yaml:"github"`
	Scrape    ScrapeConfig    `json:"scrape" yaml:"scrape"`
	RateLimit RateLimitConfig `json:"rate_limit" yaml:"rate_limit"`
	Logging   logging.Config  `json:"logging" yaml:"logging"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Port                  int      `json:"port" yaml:"port" validate:"min=1,max=65535"`
	MaxUploadBytes        int64    `json:"max_upload_bytes" yaml:"max_upload_bytes" validate:"gt=0"`
	AllowedOrigins        []string `json:"allowed_origins" yaml:"allowed_origins"`
	RequestTimeoutSeconds int      `json:"request_timeout_seconds" yaml:"request_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig configures PostgreSQL. An empty URL disables persistence.
type DatabaseConfig struct {
	URL      string `json:"url" yaml:"url" validate:"omitempty,url"`
	MaxConns int32  `json:"max_conns" yaml:"max_conns" validate:"gte=0"`
}

// RedisConfig configures the shared cache. An empty URL selects the in-memory cache.
type RedisConfig struct {
	URL    string `json:"url" yaml:"url" validate:"omitempty,url"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// LLMConfig configures the language model used for generation
type LLMConfig struct {
	APIKey          string  `json:"api_key" yaml:"api_key"`
	Model           string  `json:"model" yaml:"model"`
	Temperature     float32 `json:"temperature" yaml:"temperature" validate:"gte=0,lte=2"`
	MaxOutputTokens int32   `json:"max_output_tokens" yaml:"max_output_tokens" validate:"gte=0"`
}

// GitHubConfig configures the GitHub API client
type GitHubConfig struct {
	Token             string  `json:"token" yaml:"token"`
	BaseURL           string  `json:"base_url" yaml:"base_url" validate:"omitempty,url"`
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second" validate:"gt=0"`
	CacheTTLMinutes   int     `json:"cache_ttl_minutes" yaml:"cache_ttl_minutes" validate:"gte=0"`
}

// ScrapeConfig configures LinkedIn post scraping
type ScrapeConfig struct {
	UseBrowser      bool `json:"use_browser" yaml:"use_browser"`
	Concurrency     int  `json:"concurrency" yaml:"concurrency" validate:"gte=1,lte=10"`
	TimeoutSeconds  int  `json:"timeout_seconds" yaml:"timeout_seconds" validate:"gte=1"`
	CacheTTLMinutes int  `json:"cache_ttl_minutes" yaml:"cache_ttl_minutes" validate:"gte=0"`
}

// RateLimitConfig configures per-client request limits. Endpoints, when set,
// replace the built-in per-endpoint budgets.
type RateLimitConfig struct {
	Enabled              bool                  `json:"enabled" yaml:"enabled"`
	DefaultLimit         int                   `json:"default_limit" yaml:"default_limit" validate:"gte=1"`
	DefaultWindowSeconds int                   `json:"default_window_seconds" yaml:"default_window_seconds" validate:"gte=1"`
	Whitelist            []string              `json:"whitelist" yaml:"whitelist"`
	Blacklist            []string              `json:"blacklist" yaml:"blacklist"`
	Endpoints            []EndpointLimitConfig `json:"endpoints" yaml:"endpoints" validate:"dive"`
}

// EndpointLimitConfig is the budget for one path and method
type EndpointLimitConfig struct {
	Path          string `json:"path" yaml:"path" validate:"required,startswith=/"`
	Method        string `json:"method" yaml:"method" validate:"required,oneof=GET POST DELETE"`
	Limit         int    `json:"limit" yaml:"limit" validate:"gte=0"`
	WindowSeconds int    `json:"window_seconds" yaml:"window_seconds" validate:"gte=0"`
	Burst         int    `json:"burst" yaml:"burst" validate:"gte=0"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                  8080,
			MaxUploadBytes:        ingestion.MaxDocumentBytes,
			AllowedOrigins:        []string{"*"},
			RequestTimeoutSeconds: 120,
		},
		Redis: RedisConfig{Prefix: "resume-builder:"},
		LLM: LLMConfig{
			Temperature:     0.7,
			MaxOutputTokens: 4000,
		},
		GitHub: GitHubConfig{
			RequestsPerSecond: 10,
			CacheTTLMinutes:   60,
		},
		Scrape: ScrapeConfig{
			UseBrowser:      true,
			Concurrency:     2,
			TimeoutSeconds:  30,
			CacheTTLMinutes: 24 * 60,
		},
		RateLimit: RateLimitConfig{
			Enabled:              true,
			DefaultLimit:         1000,
			DefaultWindowSeconds: 60,
		},
		Logging: logging.Config{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig loads configuration from path (if not empty), applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	return Load(path, os.Getenv)
}

// Load is LoadConfig with an injectable environment lookup.
func Load(path string, getenv func(string) string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables. Malformed numeric
// values are an error rather than silently ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	setString("DATABASE_URL", &c.Database.URL)
	setString("REDIS_URL", &c.Redis.URL)
	setString("GEMINI_API_KEY", &c.LLM.APIKey)
	setString("LLM_MODEL", &c.LLM.Model)
	setString("GITHUB_ACCESS_TOKEN", &c.GitHub.Token)
	setString("LOG_LEVEL", &c.Logging.Level)
	setString("LOG_FORMAT", &c.Logging.Format)

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: invalid MAX_UPLOAD_BYTES %q: %w", v, err)
		}
		c.Server.MaxUploadBytes = n
	}
	if v := getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	if v := getenv("USE_BROWSER"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: invalid USE_BROWSER %q: %w", v, err)
		}
		c.Scrape.UseBrowser = b
	}
	if v := getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		c.RateLimit.Enabled = b
	}
	if v := getenv("RATE_LIMIT_DEFAULT_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_DEFAULT_LIMIT %q: %w", v, err)
		}
		c.RateLimit.DefaultLimit = n
	}
	if v := getenv("RATE_LIMIT_DEFAULT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config error: invalid RATE_LIMIT_DEFAULT_WINDOW %q: %w", v, err)
		}
		c.RateLimit.DefaultWindowSeconds = int(d.Seconds())
	}
	if v := getenv("RATE_LIMIT_WHITELIST"); v != "" {
		c.RateLimit.Whitelist = strings.Split(v, ",")
	}
	if v := getenv("RATE_LIMIT_BLACKLIST"); v != "" {
		c.RateLimit.Blacklist = strings.Split(v, ",")
	}
	return nil
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// ClientConfig returns the llm configuration. A configured model replaces the
// standard tier.
func (l LLMConfig) ClientConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Temperature = l.Temperature
	cfg.MaxOutputTokens = l.MaxOutputTokens
	if l.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, l.Model)
	}
	return cfg
}

// RequestTimeout returns the per-request timeout, zero meaning none.
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// Timeout returns the scrape timeout per page.
func (s ScrapeConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CacheTTL returns how long rendered pages stay cached.
func (s ScrapeConfig) CacheTTL() time.Duration {
	return time.Duration(s.CacheTTLMinutes) * time.Minute
}

// CacheTTL returns how long fetched profiles stay cached.
func (g GitHubConfig) CacheTTL() time.Duration {
	return time.Duration(g.CacheTTLMinutes) * time.Minute
}

// LimiterConfig converts the settings into a ratelimit configuration.
func (r RateLimitConfig) LimiterConfig() *ratelimit.Config {
	cfg := ratelimit.DefaultConfig()
	cfg.Enabled = r.Enabled
	cfg.DefaultLimit = r.DefaultLimit
	cfg.DefaultWindow = time.Duration(r.DefaultWindowSeconds) * time.Second
	cfg.Whitelist = ratelimit.NewIPSet(r.Whitelist)
	cfg.Blacklist = ratelimit.NewIPSet(r.Blacklist)

	if len(r.Endpoints) > 0 {
		cfg.EndpointConfigs = make([]ratelimit.EndpointConfig, len(r.Endpoints))
		for i, e := range r.Endpoints {
			cfg.EndpointConfigs[i] = ratelimit.EndpointConfig{
				Path:   e.Path,
				Method: e.Method,
				Limit:  e.Limit,
				Window: time.Duration(e.WindowSeconds) * time.Second,
				Burst:  e.Burst,
			}
		}
	}
	return cfg
}
