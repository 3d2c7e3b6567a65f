package rexgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promexp subpackage provides a ready-made Prometheus adapter.
type MetricsCollector interface {
	// RecordExpand is called after each expansion run.
	// maxSize is the requested term count, refSize the reference set size,
	// duration the total time taken; err is nil if successful.
	RecordExpand(maxSize, refSize int, duration time.Duration, err error)

	// RecordBatchExpand is called after each batch expansion.
	// count is the number of requests attempted, failed the number that
	// failed, duration the total wall time of the batch.
	RecordBatchExpand(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExpand(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatchExpand(int, int, time.Duration)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExpandCount       atomic.Int64
	ExpandErrors      atomic.Int64
	ExpandTotalNanos  atomic.Int64
	BatchExpandCount  atomic.Int64
	BatchExpandItems  atomic.Int64
	BatchExpandFailed atomic.Int64
}

// RecordExpand implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExpand(maxSize, refSize int, duration time.Duration, err error) {
	b.ExpandCount.Add(1)
	b.ExpandTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExpandErrors.Add(1)
	}
}

// RecordBatchExpand implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchExpand(count, failed int, duration time.Duration) {
	b.BatchExpandCount.Add(1)
	b.BatchExpandItems.Add(int64(count))
	b.BatchExpandFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ExpandCount:       b.ExpandCount.Load(),
		ExpandErrors:      b.ExpandErrors.Load(),
		ExpandAvgNanos:    b.getAvgExpandNanos(),
		BatchExpandCount:  b.BatchExpandCount.Load(),
		BatchExpandItems:  b.BatchExpandItems.Load(),
		BatchExpandFailed: b.BatchExpandFailed.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgExpandNanos() int64 {
	count := b.ExpandCount.Load()
	if count == 0 {
		return 0
	}
	return b.ExpandTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ExpandCount       int64
	ExpandErrors      int64
	ExpandAvgNanos    int64
	BatchExpandCount  int64
	BatchExpandItems  int64
	BatchExpandFailed int64
}
