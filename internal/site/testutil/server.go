package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/hover"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/httpserver"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithViews shares a registry with the test so it can inspect mounted views.
func WithViews(views *hover.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Views = views
	}
}

// WithMetrics wires a metrics set the test can read back.
func WithMetrics(metrics *observability.Metrics) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Metrics = metrics
	}
}

// WithClock overrides the clock used for view expiry.
func WithClock(clock func() time.Time) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Clock = clock
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// WithSite replaces the site configuration.
func WithSite(site config.Site) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Site = site
	}
}

// NewServer starts an httptest server running the site stack with defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Site:    config.DefaultSite(),
		HTMXSrc: "https://unpkg.com/htmx.org@2.0.4",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handler, err := httpserver.NewHandler(cfg)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}
