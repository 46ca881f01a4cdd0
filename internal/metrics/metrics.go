// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface consumed by the services. A nop
// implementation is available for tests.
type Recorder interface {
	RecordSearch(player string)
	RecordCacheHit()
	RecordCacheMiss()
	RecordSubredditError(subreddit string)
	RecordSearchLatency(d time.Duration)
	RecordSummaryFallback()
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	searches        prometheus.Counter
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	subredditErrors *prometheus.CounterVec
	searchLatency   prometheus.Histogram
	fallbacks       prometheus.Counter
}

// NewCollector registers the fanpulse metrics on reg and returns the
// collector.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanpulse_searches_total",
			Help: "Total player mention searches served.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanpulse_cache_hits_total",
			Help: "Search cache hits.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanpulse_cache_misses_total",
			Help: "Search cache misses.",
		}),
		subredditErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fanpulse_subreddit_errors_total",
			Help: "Per-subreddit fetch failures, degraded to empty results.",
		}, []string{"subreddit"}),
		searchLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fanpulse_search_latency_seconds",
			Help:    "End-to-end latency of aggregated searches.",
			Buckets: prometheus.DefBuckets,
		}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fanpulse_summary_fallbacks_total",
			Help: "Summaries served from the local rule-based fallback.",
		}),
	}
	reg.MustRegister(
		c.searches,
		c.cacheHits,
		c.cacheMisses,
		c.subredditErrors,
		c.searchLatency,
		c.fallbacks,
	)
	return c
}

func (c *Collector) RecordSearch(string) { c.searches.Inc() }
func (c *Collector) RecordCacheHit()     { c.cacheHits.Inc() }
func (c *Collector) RecordCacheMiss()    { c.cacheMisses.Inc() }
func (c *Collector) RecordSubredditError(subreddit string) {
	c.subredditErrors.WithLabelValues(subreddit).Inc()
}
func (c *Collector) RecordSearchLatency(d time.Duration) { c.searchLatency.Observe(d.Seconds()) }
func (c *Collector) RecordSummaryFallback()              { c.fallbacks.Inc() }

// Handler serves the metrics endpoint for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop discards every metric. Used in tests.
type Nop struct{}

func (Nop) RecordSearch(string)               {}
func (Nop) RecordCacheHit()                   {}
func (Nop) RecordCacheMiss()                  {}
func (Nop) RecordSubredditError(string)       {}
func (Nop) RecordSearchLatency(time.Duration) {}
func (Nop) RecordSummaryFallback()            {}
