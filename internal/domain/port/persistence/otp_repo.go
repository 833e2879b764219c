package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// OTPRepository persists hashed verification codes
type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	// GetLatestByEmail returns the newest code for email; ErrNotFound if none
	GetLatestByEmail(ctx context.Context, email string) (*entity.OTP, error)
	// IncrementAttempts reserves one attempt and returns the new count.
	// It returns ErrNotFound once maxAttempts have been used or the code is gone.
	IncrementAttempts(ctx context.Context, id string, maxAttempts int) (int, error)
	// Delete removes one code and reports whether this call removed it
	Delete(ctx context.Context, id string) (bool, error)
	DeleteByEmail(ctx context.Context, email string) error
	// DeleteExpired removes codes whose expires_at is at or before now
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
