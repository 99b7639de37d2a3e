package ui

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/config"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/features"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/hover"
	custommw "github.com/enesgules/docusaurus-ai-search-upstash/internal/site/httpserver/middleware"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/observability"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/templates/home"
)

// Dependencies collects what the UI handlers render from.
type Dependencies struct {
	Site     config.Site
	Features []features.Feature
	Views    *hover.Registry
	Metrics  *observability.Metrics
	HTMXSrc  string
	Clock    func() time.Time
}

// Handlers serves the landing page and its hover fragments.
type Handlers struct {
	site     config.Site
	features []features.Feature
	views    *hover.Registry
	metrics  *observability.Metrics
	htmxSrc  string
	now      func() time.Time
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	views := deps.Views
	if views == nil {
		views = hover.NewRegistry()
	}
	list := deps.Features
	if list == nil {
		list = features.List()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Handlers{
		site:     deps.Site,
		features: list,
		views:    views,
		metrics:  deps.Metrics,
		htmxSrc:  deps.HTMXSrc,
		now:      clock,
	}
}

// Home mounts a page view and renders the landing page with nothing hovered.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	viewID, state := h.views.Mount(h.now())
	if h.metrics != nil {
		state.Subscribe(h.metrics.ObserveHover)
	}
	observability.Logger(r.Context()).Debug("page view mounted", zap.String("view_id", viewID))

	render(w, r, home.Page(home.Props{
		Site:        h.site,
		Features:    h.features,
		Variant:     variantOf(state),
		Interactive: true,
		ViewID:      viewID,
		CSRFToken:   custommw.CSRFTokenFromContext(r.Context()),
		HTMXSrc:     h.htmxSrc,
	}))
}

// Hover records the product under the pointer, or none when the form value
// is empty, and answers with the refreshed hero title.
func (h *Handlers) Hover(w http.ResponseWriter, r *http.Request) {
	state, viewID, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	id := product.ID(r.PostForm.Get("product"))
	logger := observability.Logger(r.Context()).With(zap.String("view_id", viewID))
	if id == product.None {
		state.Clear()
	} else {
		if !product.Known(id) {
			logger.Debug("unrecognized product hovered", zap.String("product", string(id)))
		}
		state.SetHovered(id)
	}
	observability.AddEvent(r.Context(), "hover",
		attribute.String("view_id", viewID),
		attribute.String("product", string(id)),
	)

	render(w, r, home.HeroTitle(h.site.Title, variantOf(state)))
}

// HeroTitle renders the hero heading for the view's current state.
func (h *Handlers) HeroTitle(w http.ResponseWriter, r *http.Request) {
	state, _, ok := h.lookup(w, r)
	if !ok {
		return
	}
	render(w, r, home.HeroTitle(h.site.Title, variantOf(state)))
}

// Unmount discards the view. Repeated calls succeed.
func (h *Handlers) Unmount(w http.ResponseWriter, r *http.Request) {
	viewID := chi.URLParam(r, "viewID")
	if h.views.Unmount(viewID) {
		observability.Logger(r.Context()).Debug("page view unmounted", zap.String("view_id", viewID))
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (*hover.State, string, bool) {
	viewID := chi.URLParam(r, "viewID")
	state, err := h.views.Lookup(viewID, h.now())
	if err != nil {
		if errors.Is(err, hover.ErrViewNotFound) {
			observability.Logger(r.Context()).Info("page view not found", zap.String("view_id", viewID))
			custommw.Refresh(w)
			http.NotFound(w, r)
			return nil, viewID, false
		}
		observability.Logger(r.Context()).Error("page view lookup failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, viewID, false
	}
	return state, viewID, true
}

func variantOf(state *hover.State) product.Variant {
	id, ok := state.Hovered()
	if !ok {
		return product.VariantDefault
	}
	return product.VariantOf(id)
}
