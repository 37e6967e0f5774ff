// Package telemetry wires Prometheus metrics and OpenTelemetry tracing for
// the relevance service.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "relevance-engine"

// Provider bundles the tracer and the service metrics. A nil Provider is
// valid everywhere: every method no-ops on a nil receiver so tests can run
// without a metrics registry.
type Provider struct {
	tracer   trace.Tracer
	registry *prometheus.Registry

	searchesTotal        prometheus.Counter
	searchDuration       prometheus.Histogram
	recommendationsTotal prometheus.Counter
	recommendDuration    prometheus.Histogram
	classificationsTotal *prometheus.CounterVec
	topicExtractions     prometheus.Counter
	emergencyFallbacks   prometheus.Counter
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// NewProvider creates a provider with its own Prometheus registry, so
// multiple instances never collide on metric registration.
func NewProvider() *Provider {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Provider{
		tracer:   otel.Tracer(tracerName),
		registry: registry,
		searchesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "relevance_searches_total",
			Help: "Total number of catalog searches ranked.",
		}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "relevance_search_duration_seconds",
			Help:    "Time spent ranking a single search.",
			Buckets: prometheus.DefBuckets,
		}),
		recommendationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "relevance_recommendations_total",
			Help: "Total number of collection recommendation passes.",
		}),
		recommendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "relevance_recommend_duration_seconds",
			Help:    "Time spent scoring collections for one book.",
			Buckets: prometheus.DefBuckets,
		}),
		classificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relevance_language_classifications_total",
			Help: "Language classifications by detected language.",
		}, []string{"language"}),
		topicExtractions: factory.NewCounter(prometheus.CounterOpts{
			Name: "relevance_topic_extractions_total",
			Help: "Total number of topic extraction calls.",
		}),
		emergencyFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "relevance_emergency_fallbacks_total",
			Help: "Recommendation passes that degraded to the emergency path.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "relevance_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "relevance_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Handler exposes the provider's registry for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	if p == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// StartSpan starts a trace span, or returns a no-op span on a nil provider.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if p == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return p.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// RecordSearch records one ranked search.
func (p *Provider) RecordSearch(duration time.Duration) {
	if p == nil {
		return
	}
	p.searchesTotal.Inc()
	p.searchDuration.Observe(duration.Seconds())
}

// RecordRecommendation records one recommendation pass.
func (p *Provider) RecordRecommendation(duration time.Duration, emergency bool) {
	if p == nil {
		return
	}
	p.recommendationsTotal.Inc()
	p.recommendDuration.Observe(duration.Seconds())
	if emergency {
		p.emergencyFallbacks.Inc()
	}
}

// RecordClassification records one language classification result.
func (p *Provider) RecordClassification(language string) {
	if p == nil {
		return
	}
	p.classificationsTotal.WithLabelValues(language).Inc()
}

// RecordTopicExtraction records one topic extraction call.
func (p *Provider) RecordTopicExtraction() {
	if p == nil {
		return
	}
	p.topicExtractions.Inc()
}

// RecordHTTPRequest records one served HTTP request.
func (p *Provider) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if p == nil {
		return
	}
	p.httpRequests.WithLabelValues(method, path, status).Inc()
	p.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
