package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// AdvisoryLock serializes work across service instances with a PostgreSQL
// session-level advisory lock held on one pooled connection
type AdvisoryLock struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAdvisoryLock creates a new AdvisoryLock instance
func NewAdvisoryLock(db *gorm.DB, logger coreport.Logger) *AdvisoryLock {
	return &AdvisoryLock{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// WithLock blocks until the lock for key is held, runs fn and releases the lock.
// Waiting stops when ctx is done.
func (l *AdvisoryLock) WithLock(ctx context.Context, key int64, fn func(ctx context.Context) error) error {
	return l.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		l.logger.Debug("Waiting for advisory lock", map[string]any{
			"key": key,
		})

		if err := conn.Exec("SELECT pg_advisory_lock(?)", key).Error; err != nil {
			return fmt.Errorf("acquire advisory lock %d: %w", key, l.errorClassifier.MapError(err, nil, nil))
		}

		defer func() {
			// released even when ctx was canceled while fn ran
			unlockCtx := context.WithoutCancel(ctx)
			if err := conn.WithContext(unlockCtx).Exec("SELECT pg_advisory_unlock(?)", key).Error; err != nil {
				l.logger.Warn("Failed to release advisory lock", map[string]any{
					"key":   key,
					"error": err.Error(),
				})
			}
		}()

		l.logger.Debug("Advisory lock acquired", map[string]any{
			"key": key,
		})
		return fn(ctx)
	})
}
