package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

func quietLogger(t *testing.T) *core.MockLogger {
	l := core.NewMockLogger(t)
	l.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	l.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return l
}

func fastRetryConfig(maxRetries int) RetryConfig {
	return RetryConfig{MaxRetries: maxRetries, RetryInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
}

func TestRetrier_Do(t *testing.T) {
	t.Run("should retry transient errors until success", func(t *testing.T) {
		r := NewRetrier(fastRetryConfig(3), quietLogger(t))
		calls := 0

		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: connection reset", errs.ErrTransientStore)
			}
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("should not retry domain errors", func(t *testing.T) {
		r := NewRetrier(fastRetryConfig(5), quietLogger(t))
		calls := 0

		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			return errs.ErrProfileNotFound
		})

		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
		assert.Equal(t, 1, calls)
	})

	t.Run("should return the last error after exhausting attempts", func(t *testing.T) {
		r := NewRetrier(fastRetryConfig(2), quietLogger(t))
		calls := 0

		err := r.Do(context.Background(), func(context.Context) error {
			calls++
			return errs.ErrDatabaseConnection
		})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 2, calls)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		r := NewRetrier(RetryConfig{MaxRetries: 5, RetryInterval: time.Hour, MaxInterval: time.Hour}, quietLogger(t))
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0

		err := r.Do(ctx, func(context.Context) error {
			calls++
			cancel()
			return errs.ErrTransientStore
		})

		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, calls)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	config := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, config))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, config))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(6, config))

	config.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		b := calculateBackoffWithJitter(1, config)
		assert.GreaterOrEqual(t, b, 20*time.Millisecond)
		assert.LessOrEqual(t, b, 30*time.Millisecond)
	}
}
