package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

const pgNumericOutOfRange = "22003"

// ProfileRepository implements persistence.ProfileRepository using GORM
type ProfileRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProfileRepository creates a new ProfileRepository instance
func NewProfileRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProfileRepository {
	return &ProfileRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func profileToEntity(m *model.Profile) *entity.Profile {
	return entity.RestoreProfile(m.ID, m.Email, m.Name, m.Points, m.IsAdmin, m.CreatedAt, m.UpdatedAt)
}

// handleDatabaseError standardizes database error handling
func (r *ProfileRepository) handleDatabaseError(operation string, err error, userID string) error {
	mapped := r.errorClassifier.MapError(err, errs.ErrProfileNotFound, errs.ErrDuplicateEmail)

	fields := map[string]any{
		"user_id":   userID,
		"operation": operation,
		"error":     err.Error(),
	}
	switch {
	case errs.IsProfileNotFoundError(mapped):
		r.logger.Debug("Profile not found", fields)
	case errors.Is(mapped, errs.ErrProfileLocked):
		r.logger.Warn("Profile is locked by another transaction", fields)
	default:
		r.logger.Error("Database error on profiles", fields)
	}

	return mapped
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	var m model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("get", err, id)
	}
	return profileToEntity(&m), nil
}

// GetByIDForUpdate retrieves a profile with SELECT ... FOR UPDATE.
// The lock is held until the surrounding transaction commits or rolls back.
func (r *ProfileRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Profile, error) {
	r.logger.Debug("Locking profile row", map[string]any{
		"user_id": id,
	})

	var m model.Profile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("lock", err, id)
	}
	return profileToEntity(&m), nil
}

// GetByEmail retrieves a profile by email
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var m model.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&m).Error; err != nil {
		return nil, r.handleDatabaseError("get_by_email", err, email)
	}
	return profileToEntity(&m), nil
}

// Create inserts a new profile
func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	m := model.Profile{
		ID:        profile.ID,
		Email:     profile.Email,
		Name:      profile.Name,
		Points:    profile.Points(),
		IsAdmin:   profile.IsAdmin,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return r.handleDatabaseError("create", err, profile.ID)
	}

	r.logger.Info("Profile created successfully", map[string]any{
		"user_id":  profile.ID,
		"email":    profile.Email,
		"is_admin": profile.IsAdmin,
	})
	return nil
}

// Credit adds amount to the balance in a single UPDATE and returns the new balance
func (r *ProfileRepository) Credit(ctx context.Context, id string, amount int64) (int64, error) {
	var m model.Profile
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "points"}}}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"points":     gorm.Expr("points + ?", amount),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		if sqlState(result.Error) == pgNumericOutOfRange {
			return 0, errs.ErrAmountOverflow
		}
		return 0, r.handleDatabaseError("credit", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return 0, errs.ErrProfileNotFound
	}

	r.logger.Debug("Profile credited", map[string]any{
		"user_id":     id,
		"amount":      amount,
		"new_balance": m.Points,
	})
	return m.Points, nil
}

// Debit subtracts amount only when the stored balance covers it.
// The WHERE guard keeps the balance non-negative even without a prior lock.
func (r *ProfileRepository) Debit(ctx context.Context, id string, amount int64) (int64, error) {
	var m model.Profile
	result := r.db.WithContext(ctx).Model(&m).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "points"}}}).
		Where("id = ? AND points >= ?", id, amount).
		UpdateColumns(map[string]any{
			"points":     gorm.Expr("points - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return 0, r.handleDatabaseError("debit", result.Error, id)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return 0, r.handleDatabaseError("debit", err, id)
		}
		if count == 0 {
			return 0, errs.ErrProfileNotFound
		}

		r.logger.Warn("Guarded debit touched no row", map[string]any{
			"user_id": id,
			"amount":  amount,
		})
		return 0, errs.ErrInsufficientPoints
	}

	r.logger.Debug("Profile debited", map[string]any{
		"user_id":     id,
		"amount":      amount,
		"new_balance": m.Points,
	})
	return m.Points, nil
}

// SetAdmin updates the admin flag
func (r *ProfileRepository) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	result := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"is_admin":   isAdmin,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.handleDatabaseError("set_admin", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProfileNotFound
	}

	r.logger.Info("Profile admin flag updated", map[string]any{
		"user_id":  id,
		"is_admin": isAdmin,
	})
	return nil
}

// List returns all profiles, newest first
func (r *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	var models []model.Profile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("list", err, "")
	}

	profiles := make([]*entity.Profile, 0, len(models))
	for i := range models {
		profiles = append(profiles, profileToEntity(&models[i]))
	}
	return profiles, nil
}
