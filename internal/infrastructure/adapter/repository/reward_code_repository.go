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

// RewardCodeRepository implements persistence.RewardCodeRepository using GORM
type RewardCodeRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRewardCodeRepository creates a new RewardCodeRepository instance
func NewRewardCodeRepository(db *gorm.DB, logger coreport.Logger) *RewardCodeRepository {
	return &RewardCodeRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func rewardCodeToEntity(m *model.RewardCode) *entity.RewardCode {
	return &entity.RewardCode{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		RewardID:      m.RewardID,
		Code:          m.Code,
		CreatedAt:     m.CreatedAt,
		FulfilledAt:   m.FulfilledAt,
	}
}

// Insert stores a new code. A clash on the code column inserts nothing and is
// reported as ErrDuplicateCodeCollision without aborting the transaction.
func (r *RewardCodeRepository) Insert(ctx context.Context, code *entity.RewardCode) error {
	m := model.RewardCode{
		ID:            code.ID,
		TransactionID: code.TransactionID,
		UserID:        code.UserID,
		RewardID:      code.RewardID,
		Code:          code.Code,
		CreatedAt:     code.CreatedAt,
		FulfilledAt:   code.FulfilledAt,
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoNothing: true,
		}).
		Create(&m)

	if result.Error != nil {
		r.logger.Error("Failed to insert reward code", map[string]any{
			"transaction_id": code.TransactionID,
			"error":          result.Error.Error(),
		})
		return r.errorClassifier.MapError(result.Error, errs.ErrRewardCodeNotFound, nil)
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Reward code collision", map[string]any{
			"transaction_id": code.TransactionID,
		})
		return errs.ErrDuplicateCodeCollision
	}

	return nil
}

// GetByTransactionID retrieves the code issued for a redeem transaction
func (r *RewardCodeRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.RewardCode, error) {
	var m model.RewardCode
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).Take(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrRewardCodeNotFound, nil)
	}
	return rewardCodeToEntity(&m), nil
}

// MarkFulfilled sets fulfilled_at only if it is still NULL.
// It reports whether this call made the transition.
func (r *RewardCodeRepository) MarkFulfilled(ctx context.Context, transactionID string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.RewardCode{}).
		Where("transaction_id = ? AND fulfilled_at IS NULL", transactionID).
		UpdateColumn("fulfilled_at", at)

	if result.Error != nil {
		r.logger.Error("Failed to mark reward fulfilled", map[string]any{
			"transaction_id": transactionID,
			"error":          result.Error.Error(),
		})
		return false, r.errorClassifier.MapError(result.Error, errs.ErrRewardCodeNotFound, nil)
	}

	return result.RowsAffected == 1, nil
}

// ListRedemptions returns every code with its ledger entry, owner and catalog reward, newest first
func (r *RewardCodeRepository) ListRedemptions(ctx context.Context) ([]*entity.Redemption, error) {
	var models []model.RewardCode
	err := r.db.WithContext(ctx).
		Preload("Transaction").
		Preload("Profile").
		Preload("Reward").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		r.logger.Error("Failed to list redemptions", map[string]any{
			"error": err.Error(),
		})
		return nil, r.errorClassifier.MapError(err, errs.ErrRewardCodeNotFound, nil)
	}

	redemptions := make([]*entity.Redemption, 0, len(models))
	for i := range models {
		m := &models[i]
		redemption := &entity.Redemption{
			Code:        rewardCodeToEntity(m),
			Transaction: pointTransactionToEntity(&m.Transaction),
			UserEmail:   m.Profile.Email,
			UserName:    m.Profile.Name,
		}
		if m.Reward != nil {
			redemption.RewardName = m.Reward.Name
		}
		redemptions = append(redemptions, redemption)
	}
	return redemptions, nil
}
