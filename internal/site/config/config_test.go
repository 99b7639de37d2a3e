package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "development", cfg.Server.Environment)
	require.False(t, cfg.IsProduction())
	require.Equal(t, 30*time.Minute, cfg.Views.TTL)
	require.Equal(t, time.Minute, cfg.Views.SweepInterval)
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.Assets.HTMXSrc)

	require.Equal(t, "Upstash Documentation", cfg.Site.Title)
	require.Equal(t, "Serverless Data Platform", cfg.Site.Tagline)
	require.Equal(t, "/docs/vector/features/hybridindexes", cfg.Site.Hero.CTA.Href)
	require.Equal(t, "Click to learn more about Hybrid Indexes in Upstash Vector!", cfg.Site.Hero.CTA.Label)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvironment(map[string]string{
		"SITE_HTTP_ADDR":           ":9090",
		"SITE_ENV":                 "Production",
		"SITE_VIEW_TTL":            "5m",
		"SITE_VIEW_SWEEP_INTERVAL": "10s",
		"SITE_CSRF_COOKIE_SECURE":  "true",
		"LOG_LEVEL":                "debug",
	}))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Server.Address)
	require.True(t, cfg.IsProduction())
	require.True(t, cfg.Server.CSRFCookieSecure)
	require.Equal(t, 5*time.Minute, cfg.Views.TTL)
	require.Equal(t, 10*time.Second, cfg.Views.SweepInterval)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsInvalidDurations(t *testing.T) {
	t.Parallel()

	_, err := Load(WithEnvironment(map[string]string{"SITE_VIEW_TTL": "0s"}))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Load(WithEnvironment(map[string]string{"SITE_VIEW_TTL": "soon"}))
	require.Error(t, err)
}

func TestLoadSiteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
title: "  Docs  "
tagline: Edge data
url: https://example.com/
hero:
  cta:
    label: Read more
    href: /docs/intro
`), 0o600))

	cfg, err := Load(WithEnvironment(map[string]string{}), WithSiteFile(path))
	require.NoError(t, err)
	require.Equal(t, "Docs", cfg.Site.Title)
	require.Equal(t, "Edge data", cfg.Site.Description, "description falls back to tagline")
	require.Equal(t, "Docs", cfg.Site.Organization)
	require.Equal(t, "https://example.com", cfg.Site.URL)
	require.Equal(t, "/docs/intro", cfg.Site.Hero.CTA.Href)
}

func TestParseSiteValidation(t *testing.T) {
	t.Parallel()

	_, err := ParseSite([]byte("tagline: nothing else"))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseSite([]byte("title: x\nhero:\n  cta:\n    href: /docs\n"))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseSite([]byte("title: [unclosed"))
	require.Error(t, err)
}

func TestLoadSiteMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadSite(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
