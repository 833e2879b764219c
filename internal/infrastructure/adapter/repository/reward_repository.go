package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/model"
)

// RewardRepository implements persistence.RewardRepository using GORM
type RewardRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRewardRepository creates a new RewardRepository instance
func NewRewardRepository(db *gorm.DB, logger coreport.Logger) *RewardRepository {
	return &RewardRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func rewardToEntity(m *model.Reward) *entity.Reward {
	return &entity.Reward{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		PointsCost: m.PointsCost,
		CreatedAt:  m.CreatedAt,
	}
}

// Create inserts a catalog entry
func (r *RewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	m := model.Reward{
		ID:         reward.ID,
		Name:       reward.Name,
		Slug:       reward.Slug,
		PointsCost: reward.PointsCost,
		CreatedAt:  reward.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		r.logger.Warn("Failed to create reward", map[string]any{
			"slug":  reward.Slug,
			"error": err.Error(),
		})
		return r.errorClassifier.MapError(err, errs.ErrRewardNotFound, errs.ErrDuplicateReward)
	}
	return nil
}

// GetByID retrieves a catalog entry
func (r *RewardRepository) GetByID(ctx context.Context, id string) (*entity.Reward, error) {
	var m model.Reward
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrRewardNotFound, nil)
	}
	return rewardToEntity(&m), nil
}

// List returns the catalog ordered by cost
func (r *RewardRepository) List(ctx context.Context) ([]*entity.Reward, error) {
	var models []model.Reward
	if err := r.db.WithContext(ctx).Order("points_cost ASC").Order("name ASC").Find(&models).Error; err != nil {
		return nil, r.errorClassifier.MapError(err, errs.ErrRewardNotFound, nil)
	}

	rewards := make([]*entity.Reward, 0, len(models))
	for i := range models {
		rewards = append(rewards, rewardToEntity(&models[i]))
	}
	return rewards, nil
}
