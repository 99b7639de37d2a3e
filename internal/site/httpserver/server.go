package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/hover"
	custommw "github.com/enesgules/docusaurus-ai-search-upstash/internal/site/httpserver/middleware"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/httpserver/ui"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
	"github.com/enesgules/docusaurus-ai-search-upstash/public"
)

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address  string
	Site     config.Site
	Features []features.Feature
	HTMXSrc  string

	Logger *zap.Logger
	// Views holds per-page-view hover state. The caller owns its sweeper.
	Views *hover.Registry
	// Metrics must not be shared between servers; the active views gauge is
	// registered on it.
	Metrics *observability.Metrics
	Clock   func() time.Time

	CSRFCookieName   string
	CSRFCookieSecure bool
	CSRFHeaderName   string
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// NewHandler builds the routed handler without binding an address.
func NewHandler(cfg Config) (http.Handler, error) {
	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("embed static: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	views := cfg.Views
	if views == nil {
		views = hover.NewRegistry()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics(nil)
	}
	metrics.TrackViews(views.Len)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(observability.InjectLogger(logger))
	router.Use(observability.Trace())
	router.Use(observability.RequestLogger())
	router.Use(observability.Recovery(logger))
	router.Use(metrics.Middleware)
	router.Use(chimw.Timeout(60 * time.Second))

	router.Get("/healthz", ui.Health)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
	router.Handle("/static/*", custommw.Assets(staticContent, "/static/"))

	handlers := ui.NewHandlers(ui.Dependencies{
		Site:     cfg.Site,
		Features: cfg.Features,
		Views:    views,
		Metrics:  metrics,
		HTMXSrc:  cfg.HTMXSrc,
		Clock:    cfg.Clock,
	})

	mountSiteRoutes(router, handlers, custommw.CSRFConfig{
		CookieName: cfg.CSRFCookieName,
		HeaderName: cfg.CSRFHeaderName,
		Secure:     cfg.CSRFCookieSecure,
	})
	return router, nil
}

func mountSiteRoutes(router chi.Router, handlers *ui.Handlers, csrf custommw.CSRFConfig) {
	router.Group(func(r chi.Router) {
		r.Use(custommw.HTMX())
		r.Use(custommw.NoStore())
		r.Use(custommw.CSRF(csrf))

		r.Get("/", handlers.Home)
		r.Route("/views/{viewID}", func(r chi.Router) {
			r.Delete("/", handlers.Unmount)
			RegisterFragment(r, http.MethodPost, "/hover", handlers.Hover)
			RegisterFragment(r, http.MethodGet, "/title", handlers.HeroTitle)
		})
	})
}

// RegisterFragment registers a handler that only answers htmx requests.
func RegisterFragment(r chi.Router, method, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Method(method, pattern, handler)
}
