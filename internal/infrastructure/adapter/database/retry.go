package database

import (
	"context"
	"math/rand"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // Factor to add randomness to retry intervals (0.0-1.0)
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: 50 * time.Millisecond,
		MaxInterval:   500 * time.Millisecond,
		JitterFactor:  0.2,
	}
}

// Retrier re-runs read operations that failed with a transient store error.
// Writes are never handed to it.
type Retrier struct {
	config RetryConfig
	logger coreport.Logger
}

// NewRetrier creates a Retrier
func NewRetrier(config RetryConfig, logger coreport.Logger) *Retrier {
	if config.MaxRetries <= 0 {
		config.MaxRetries = 1
	}
	return &Retrier{
		config: config,
		logger: logger,
	}
}

// Do runs operation, retrying while it returns a transient error
func (r *Retrier) Do(ctx context.Context, operation func(ctx context.Context) error) error {
	var err error
	var attempt int

	for attempt = 0; attempt < r.config.MaxRetries; attempt++ {
		err = operation(ctx)
		if err == nil {
			return nil
		}

		if !errs.IsTransientError(err) {
			return err
		}

		if attempt == r.config.MaxRetries-1 {
			break
		}

		backoff := calculateBackoffWithJitter(attempt, r.config)
		r.logger.Warn("Transient database error, retrying read", map[string]any{
			"attempt":     attempt + 1,
			"max_retries": r.config.MaxRetries,
			"error":       err.Error(),
			"retry_after": backoff.String(),
		})

		timer := time.NewTimer(backoff)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			r.logger.Warn("Retry canceled by context", map[string]any{
				"attempts": attempt + 1,
				"error":    ctx.Err().Error(),
			})
			return ctx.Err()
		}
	}

	r.logger.Error("All retry attempts failed", map[string]any{
		"attempts":    attempt + 1,
		"max_retries": r.config.MaxRetries,
		"error":       err.Error(),
	})

	return err
}

// calculateBackoffWithJitter computes the backoff duration with exponential increase and jitter
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval * (1 << uint(attempt))

	if backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		jitter := time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
		backoff += jitter
	}

	return backoff
}
