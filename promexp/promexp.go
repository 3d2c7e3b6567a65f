// Package promexp provides a Prometheus adapter for rexgo metrics.
//
// The Collector implements rexgo.MetricsCollector and exports expansion
// counts, latencies and failure counts as Prometheus metrics:
//
//	collector := promexp.NewCollector()
//	prometheus.MustRegister(collector.Collectors()...)
//
//	ex, _ := rexgo.New(idx, rexgo.WithMetricsCollector(collector))
package promexp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports expansion metrics to Prometheus. It is safe for
// concurrent use.
type Collector struct {
	expandsTotal    *prometheus.CounterVec
	expandLatency   prometheus.Histogram
	expandTermCount prometheus.Histogram
	batchesTotal    prometheus.Counter
	batchRequests   *prometheus.CounterVec
}

// NewCollector creates an unregistered Collector. Callers register its
// collectors with their own registry via Collectors.
func NewCollector() *Collector {
	return &Collector{
		expandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rexgo_expands_total",
				Help: "Total expansion runs by status.",
			},
			[]string{"status"},
		),
		expandLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rexgo_expand_latency_seconds",
				Help:    "Expansion run latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		expandTermCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rexgo_expand_requested_terms",
				Help:    "Requested expansion size per run.",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
			},
		),
		batchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "rexgo_batch_expands_total",
				Help: "Total batch expansion runs.",
			},
		),
		batchRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rexgo_batch_requests_total",
				Help: "Total batched expansion requests by status.",
			},
			[]string{"status"},
		),
	}
}

// Collectors returns every Prometheus collector for registration:
//
//	prometheus.MustRegister(collector.Collectors()...)
func (c *Collector) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.expandsTotal,
		c.expandLatency,
		c.expandTermCount,
		c.batchesTotal,
		c.batchRequests,
	}
}

// RecordExpand implements rexgo.MetricsCollector.
func (c *Collector) RecordExpand(maxSize, refSize int, duration time.Duration, err error) {
	c.expandsTotal.WithLabelValues(status(err)).Inc()
	c.expandLatency.Observe(duration.Seconds())
	c.expandTermCount.Observe(float64(maxSize))
}

// RecordBatchExpand implements rexgo.MetricsCollector.
func (c *Collector) RecordBatchExpand(count, failed int, duration time.Duration) {
	c.batchesTotal.Inc()
	c.batchRequests.WithLabelValues("ok").Add(float64(count - failed))
	c.batchRequests.WithLabelValues("error").Add(float64(failed))
}

func status(err error) string {
	if err != nil {
		return "error"
	}

	return "ok"
}
