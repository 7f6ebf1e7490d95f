package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/as3d12/instaboard/client"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Config holds the board configuration.
// Environment variables are parsed from the INSTABOARD_ prefix.
type Config struct {
	// Directory endpoint; the result count is appended per request.
	Endpoint string `envconfig:"ENDPOINT" default:"https://randomuser.me/api/"`

	// HTTP client safety net and per-fetch latency cap.
	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	FetchTimeout time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`

	// Requests per second towards the endpoint; 0 disables pacing.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"0"`
	RateBurst int     `envconfig:"RATE_BURST" default:"1"`

	UserAgent string `envconfig:"USER_AGENT" default:"instaboard/1.0"`

	// serve command
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`

	// Initial display mode.
	DarkMode bool `envconfig:"DARK_MODE" default:"false"`
}

// New loads and validates the configuration. See Load.
func New(dotenvFiles ...string) (*Config, error) {
	cfg, err := Load(dotenvFiles...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads an optional .env file, then parses INSTABOARD_* variables
// without validating them, so callers can apply overrides first.
// Variables already set in the environment win over .env entries.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := LoadDotEnv(dotenvFiles...); err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("INSTABOARD", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	log.Debug().
		Str("endpoint", cfg.Endpoint).
		Dur("http_timeout", cfg.HTTPTimeout).
		Dur("fetch_timeout", cfg.FetchTimeout).
		Float64("rate_limit", cfg.RateLimit).
		Str("http_addr", cfg.HTTPAddr).
		Str("log_level", cfg.LogLevel).
		Bool("dark_mode", cfg.DarkMode).
		Msg("Configuration loaded")

	return &cfg, nil
}

// LoadDotEnv loads the given files (default ".env"). Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// NewForTesting returns defaults suitable for tests, pointed at endpoint.
func NewForTesting(endpoint string) *Config {
	return &Config{
		Endpoint:     endpoint,
		HTTPTimeout:  5 * time.Second,
		FetchTimeout: 2 * time.Second,
		RateBurst:    1,
		UserAgent:    "instaboard-test",
		HTTPAddr:     "127.0.0.1:0",
		LogLevel:     "debug",
	}
}

// Validate checks the endpoint and numeric settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid INSTABOARD_ENDPOINT %q", c.Endpoint)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("INSTABOARD_HTTP_TIMEOUT must be > 0")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("INSTABOARD_FETCH_TIMEOUT must be >= 0")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("INSTABOARD_RATE_LIMIT must be >= 0")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level, debug when Debug is set.
func (c *Config) Level() zerolog.Level {
	if c.Debug {
		return zerolog.DebugLevel
	}
	lvl, err := ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// ClientOptions translates the configuration into fetcher options.
func (c *Config) ClientOptions() []client.Option {
	opts := []client.Option{
		client.WithHTTPTimeout(c.HTTPTimeout),
		client.WithDebugLogging(c.Debug),
	}
	if c.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(rate.Limit(c.RateLimit), c.RateBurst))
	}
	if c.UserAgent != "" {
		opts = append(opts, client.WithUserAgent(c.UserAgent))
	}
	return opts
}

// ParseLevel accepts debug, info, warn, error (any case).
func ParseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unsupported INSTABOARD_LOG_LEVEL: %s", s)
	}
}
