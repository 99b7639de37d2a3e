package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/enesgules/docusaurus-ai-search-upstash/internal/site/product"
)

const metricsNamespace = "site"

// Metrics holds the prometheus collectors exported by the site.
type Metrics struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	hoverEvents     *prometheus.CounterVec
}

// NewMetrics registers the site collectors on registry. A nil registry gets a
// fresh one.
func NewMetrics(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: registry,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		hoverEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "hover_events_total",
			Help:      "Hover state changes by product; none counts pointer leaves.",
		}, []string{"product"}),
	}
	registry.MustRegister(m.requestDuration, m.hoverEvents)
	return m
}

// TrackViews exports the number of mounted page views through count.
func (m *Metrics) TrackViews(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "page_views_active",
		Help:      "Mounted page views holding hover state.",
	}, func() float64 { return float64(count()) }))
}

// ObserveHover counts a hover state change. Unknown identifiers share one
// label value to bound cardinality.
func (m *Metrics) ObserveHover(id product.ID, hovered bool) {
	label := "none"
	switch {
	case !hovered:
	case product.Known(id):
		label = string(id)
	default:
		label = "unknown"
	}
	m.hoverEvents.WithLabelValues(label).Inc()
}

// Middleware records request latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := newResponseRecorder(w)
		start := time.Now()
		next.ServeHTTP(recorder, r)
		m.requestDuration.
			WithLabelValues(routePattern(r), r.Method, strconv.Itoa(recorder.Status())).
			Observe(time.Since(start).Seconds())
	})
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
