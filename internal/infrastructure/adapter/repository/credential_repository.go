package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

// CredentialRepository stores identity provider accounts. It is used only by
// the identity adapter; the domain never sees password hashes.
type CredentialRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCredentialRepository creates a new CredentialRepository instance
func NewCredentialRepository(db *gorm.DB, logger coreport.Logger) *CredentialRepository {
	return &CredentialRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create inserts an account; ErrDuplicateEmail if the email is taken
func (r *CredentialRepository) Create(ctx context.Context, c *model.Credential) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if !r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Error("Failed to create credential", map[string]any{"error": err.Error()})
		}
		return r.errorClassifier.MapError(err, errs.ErrNotFound, errs.ErrDuplicateEmail)
	}
	return nil
}

// GetByEmail retrieves an account; ErrNotFound if missing
func (r *CredentialRepository) GetByEmail(ctx context.Context, email string) (*model.Credential, error) {
	var c model.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&c).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrNotFound, nil)
	}
	return &c, nil
}

// Delete removes an account; deleting a missing account is not an error
func (r *CredentialRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Credential{}).Error; err != nil {
		return r.errorClassifier.MapError(err, errs.ErrNotFound, nil)
	}
	return nil
}

// MarkVerified stamps email_verified_at once; ErrNotFound if no account has the email
func (r *CredentialRepository) MarkVerified(ctx context.Context, email string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"email_verified_at": gorm.Expr("COALESCE(email_verified_at, ?)", at),
			"updated_at":        at,
		})
	if result.Error != nil {
		return r.errorClassifier.MapError(result.Error, errs.ErrNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
