// Package config loads runtime configuration from the environment and the
// site presentation settings from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server ServerConfig
	Views  ViewConfig
	Assets AssetConfig
	Log    LogConfig
	Site   Site
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address          string `env:"SITE_HTTP_ADDR" envDefault:":8080"`
	Environment      string `env:"SITE_ENV" envDefault:"development"`
	CSRFCookieSecure bool   `env:"SITE_CSRF_COOKIE_SECURE" envDefault:"false"`
}

// ViewConfig controls page view lifetime.
type ViewConfig struct {
	TTL           time.Duration `env:"SITE_VIEW_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"SITE_VIEW_SWEEP_INTERVAL" envDefault:"1m"`
}

// AssetConfig points at client-side dependencies.
type AssetConfig struct {
	HTMXSrc  string `env:"SITE_HTMX_SRC" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
	SiteFile string `env:"SITE_CONFIG_FILE"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type loadOptions struct {
	environment map[string]string
	envFile     string
	siteFile    *string
}

// Option customises Load.
type Option func(*loadOptions)

// WithEnvironment replaces the process environment (used by tests).
func WithEnvironment(values map[string]string) Option {
	return func(o *loadOptions) {
		o.environment = values
	}
}

// WithEnvFile overrides the dotenv file path. An empty path disables dotenv.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) {
		o.envFile = path
	}
}

// WithSiteFile overrides SITE_CONFIG_FILE.
func WithSiteFile(path string) Option {
	return func(o *loadOptions) {
		o.siteFile = &path
	}
}

// Load builds the configuration. A missing dotenv file is not an error.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{envFile: defaultEnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	if o.environment == nil && o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", o.envFile, err)
		}
	}

	var cfg Config
	parseOpts := env.Options{}
	if o.environment != nil {
		parseOpts.Environment = o.environment
	}
	if err := env.ParseWithOptions(&cfg, parseOpts); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if o.siteFile != nil {
		cfg.Assets.SiteFile = *o.siteFile
	}

	site, err := LoadSite(cfg.Assets.SiteFile)
	if err != nil {
		return Config{}, err
	}
	cfg.Site = site

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return fmt.Errorf("%w: SITE_HTTP_ADDR is empty", ErrInvalid)
	}
	if c.Views.TTL <= 0 {
		return fmt.Errorf("%w: SITE_VIEW_TTL must be positive", ErrInvalid)
	}
	if c.Views.SweepInterval <= 0 {
		return fmt.Errorf("%w: SITE_VIEW_SWEEP_INTERVAL must be positive", ErrInvalid)
	}
	return c.Site.Validate()
}

// IsProduction reports whether the deployment environment is production.
func (c Config) IsProduction() bool {
	switch strings.ToLower(strings.TrimSpace(c.Server.Environment)) {
	case "prod", "production":
		return true
	default:
		return false
	}
}
