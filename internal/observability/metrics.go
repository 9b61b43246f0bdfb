package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"talentscreen/internal/config"
)

// PipelineMetrics implements the pipeline's Metrics interface on Prometheus
// collectors. All collectors live on a private registry so tests can create
// independent instances.
type PipelineMetrics struct {
	registry *prometheus.Registry

	processed *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	requeued  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewPipelineMetrics registers the pipeline collectors on a fresh registry.
func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &PipelineMetrics{
		registry: registry,
		processed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentscreen",
			Name:      "work_items_processed_total",
			Help:      "Work items analyzed and committed.",
		}, []string{"kind"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentscreen",
			Name:      "work_items_dropped_total",
			Help:      "Work items settled without producing an analysis.",
		}, []string{"kind", "reason"}),
		requeued: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentscreen",
			Name:      "work_items_requeued_total",
			Help:      "Work items returned to the broker for redelivery.",
		}, []string{"kind"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentscreen",
			Name:      "analysis_fallbacks_total",
			Help:      "Fallback documents substituted after generation failures.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "talentscreen",
			Name:      "work_item_duration_seconds",
			Help:      "End to end processing time per work item.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300},
		}, []string{"kind"}),
	}

	registry.MustRegister(m.processed, m.dropped, m.requeued, m.fallbacks, m.duration)
	return m
}

// ItemProcessed records a successful commit.
func (m *PipelineMetrics) ItemProcessed(kind string, duration time.Duration) {
	m.processed.WithLabelValues(kind).Inc()
	m.duration.WithLabelValues(kind).Observe(duration.Seconds())
}

// ItemDropped records an item settled without an analysis.
func (m *PipelineMetrics) ItemDropped(kind, reason string) {
	m.dropped.WithLabelValues(kind, reason).Inc()
}

// ItemRequeued records an item handed back to the broker.
func (m *PipelineMetrics) ItemRequeued(kind string) {
	m.requeued.WithLabelValues(kind).Inc()
}

// FallbackUsed records a substituted fallback document.
func (m *PipelineMetrics) FallbackUsed(operation string) {
	m.fallbacks.WithLabelValues(operation).Inc()
}

// Handler serves the registry for scraping.
func (m *PipelineMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// StartMetricsServer starts a dedicated HTTP server exposing the metrics
// endpoint. It returns immediately; the server runs until process exit.
func StartMetricsServer(m *PipelineMetrics, cfg config.MetricsConfig) error {
	if !cfg.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Endpoint, m.Handler())

	addr := ":" + cfg.Port
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Metrics server error: %v\n", err)
		}
	}()

	return nil
}
