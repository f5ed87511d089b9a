package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exports engine activity as Prometheus metrics.
//
// Metric names (with the configured namespace prefix):
//
//	search_total{result="found|not_found|error"}
//	search_expansions             histogram
//	search_duration_seconds       histogram
//	build_total{mode="sequential|parallel",result="ok|error"}
//	build_sources_total
//	build_duration_seconds{mode}  histogram
type Prometheus struct {
	searches      *prometheus.CounterVec
	expansions    prometheus.Histogram
	searchLatency prometheus.Histogram
	builds        *prometheus.CounterVec
	sources       prometheus.Counter
	buildLatency  *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them on reg.
// Registration is all or nothing: on error, collectors already added by this
// call are unregistered again, so a corrected retry on the same registry works.
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Prometheus, error) {
	p := &Prometheus{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_total",
			Help:      "A* searches by outcome.",
		}, []string{"result"}),
		expansions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expansions",
			Help:      "Node expansions per A* search.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "A* search wall time.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_total",
			Help:      "Distance-field builds by mode and outcome.",
		}, []string{"mode", "result"}),
		sources: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "build_sources_total",
			Help:      "Source cells flooded across all builds.",
		}),
		buildLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Distance-field build wall time.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"mode"}),
	}

	collectors := []prometheus.Collector{
		p.searches, p.expansions, p.searchLatency, p.builds, p.sources, p.buildLatency,
	}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, done := range collectors[:i] {
				reg.Unregister(done)
			}
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}

	return p, nil
}

// RecordSearch implements Recorder.
func (p *Prometheus) RecordSearch(d time.Duration, expanded int, found bool, err error) {
	result := "not_found"
	switch {
	case err != nil:
		result = "error"
	case found:
		result = "found"
	}
	p.searches.WithLabelValues(result).Inc()
	p.expansions.Observe(float64(expanded))
	p.searchLatency.Observe(d.Seconds())
}

// RecordBuild implements Recorder.
func (p *Prometheus) RecordBuild(d time.Duration, sources int, parallel bool, err error) {
	mode := "sequential"
	if parallel {
		mode = "parallel"
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	p.builds.WithLabelValues(mode, result).Inc()
	p.sources.Add(float64(sources))
	p.buildLatency.WithLabelValues(mode).Observe(d.Seconds())
}
