// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var (
	registerOnce sync.Once

	searches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "searches_total",
		Help:      "Total number of ranked searches by active metric",
	}, []string{"metric"})
	searchFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "search_failures_total",
		Help:      "Total number of rejected searches by reason",
	}, []string{"reason"})
	candidatesScored = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "candidates_scored_total",
		Help:      "Total number of haystack entries scored by metric",
	}, []string{"metric"})
	searchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "spotlight",
		Name:      "search_duration_seconds",
		Help:      "Histogram of search durations in seconds by metric",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs up to a few seconds
	}, []string{"metric"})
	scoreCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "score_cache_hits_total",
		Help:      "Total number of scores served from the score cache",
	})
	scoreCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "score_cache_misses_total",
		Help:      "Total number of scores computed because the cache had no entry",
	})
	configChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "spotlight",
		Name:      "config_changes_total",
		Help:      "Total number of applied configuration changes by option",
	}, []string{"option"})
	registeredMetrics = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "spotlight",
		Name:      "registered_metrics",
		Help:      "Current number of metrics in the registry",
	})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(searches, searchFailures, candidatesScored, searchDuration,
			scoreCacheHits, scoreCacheMisses, configChanges, registeredMetrics)
	})
}

// Search helpers
func IncSearch(metric string)        { searches.WithLabelValues(metric).Inc() }
func IncSearchFailure(reason string) { searchFailures.WithLabelValues(reason).Inc() }
func AddScored(metric string, n int) { candidatesScored.WithLabelValues(metric).Add(float64(n)) }
func ObserveSearchDuration(metric string, d time.Duration) {
	searchDuration.WithLabelValues(metric).Observe(d.Seconds())
}

// Cache and configuration helpers
func IncScoreCacheHit()             { scoreCacheHits.Inc() }
func IncScoreCacheMiss()            { scoreCacheMisses.Inc() }
func IncConfigChange(option string) { configChanges.WithLabelValues(option).Inc() }
func SetRegisteredMetrics(n int)    { registeredMetrics.Set(float64(n)) }

// WriteText writes every family in the default gatherer in the Prometheus
// text exposition format.
func WriteText(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
