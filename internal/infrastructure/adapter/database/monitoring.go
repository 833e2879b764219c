package database

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// QueryObserver receives the latency of every measured database operation
type QueryObserver interface {
	ObserveQuery(operation, table string, duration time.Duration, failed bool)
}

// QueryMetrics holds metrics about a database query
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

type observerRef struct {
	QueryObserver
}

// MetricsCollector times database operations and forwards them to the
// attached QueryObserver. Without an observer it only logs slow operations.
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration
	observer      atomic.Pointer[observerRef]
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: 100 * time.Millisecond,
	}
}

// SetObserver attaches o; nil detaches the current observer
func (c *MetricsCollector) SetObserver(o QueryObserver) {
	if o == nil {
		c.observer.Store(nil)
		return
	}
	c.observer.Store(&observerRef{o})
}

// Record forwards one finished statement. A missing row is a result, not a failure.
func (c *MetricsCollector) Record(operation, table string, duration time.Duration, err error) {
	ref := c.observer.Load()
	if ref == nil {
		return
	}
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	ref.ObserveQuery(operation, table, duration, failed)
}

// MeasureQuery measures the execution time of a database operation
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func(ctx context.Context) (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn(ctx)

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}

	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	c.Record(operation, "", metrics.Duration, err)

	if metrics.Duration > c.slowThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}
