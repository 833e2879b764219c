package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

// OTPRepository implements persistence.OTPRepository using GORM
type OTPRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOTPRepository creates a new OTPRepository instance
func NewOTPRepository(db *gorm.DB, logger coreport.Logger) *OTPRepository {
	return &OTPRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create stores a hashed code
func (r *OTPRepository) Create(ctx context.Context, otp *entity.OTP) error {
	m := model.OTP{
		ID:        otp.ID,
		Email:     otp.Email,
		CodeHash:  otp.CodeHash,
		Attempts:  otp.Attempts,
		ExpiresAt: otp.ExpiresAt,
		CreatedAt: otp.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.errorClassifier.MapError(err, errs.ErrNotFound, nil)
	}
	return nil
}

// GetLatestByEmail returns the newest code issued for email
func (r *OTPRepository) GetLatestByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	var m model.OTP
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Take(&m).Error
	if err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound, nil)
	}

	return &entity.OTP{
		ID:        m.ID,
		Email:     m.Email,
		CodeHash:  m.CodeHash,
		Attempts:  m.Attempts,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// IncrementAttempts bumps the attempt counter while it is below maxAttempts.
// The guard lives in the UPDATE so parallel guesses cannot overrun it.
func (r *OTPRepository) IncrementAttempts(ctx context.Context, id string, maxAttempts int) (int, error) {
	var m model.OTP
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "attempts"}}}).
		Where("id = ? AND attempts < ?", id, maxAttempts).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		return 0, r.errorClassifier.MapError(result.Error, errs.ErrNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrNotFound
	}
	return m.Attempts, nil
}

// Delete removes one code. Only the caller that actually removed the row
// gets true, which makes consuming a code single-use.
func (r *OTPRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.OTP{})
	if result.Error != nil {
		return false, r.errorClassifier.MapError(result.Error, errs.ErrNotFound, nil)
	}
	return result.RowsAffected == 1, nil
}

// DeleteByEmail removes every code issued for email
func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	if err := r.db.WithContext(ctx).Where("email = ?", email).Delete(&model.OTP{}).Error; err != nil {
		return r.errorClassifier.MapError(err, errs.ErrNotFound, nil)
	}
	return nil
}

// DeleteExpired removes codes that can no longer be used
func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.OTP{})
	if result.Error != nil {
		return 0, r.errorClassifier.MapError(result.Error, errs.ErrNotFound, nil)
	}
	if result.RowsAffected > 0 {
		r.logger.Debug("Expired verification codes deleted", map[string]any{
			"count": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
