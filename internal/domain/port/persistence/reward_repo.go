package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// RewardRepository manages the reward catalog
type RewardRepository interface {
	// Create inserts a catalog entry; ErrDuplicateReward if the slug exists
	Create(ctx context.Context, reward *entity.Reward) error
	// GetByID retrieves a catalog entry; ErrRewardNotFound if missing
	GetByID(ctx context.Context, id string) (*entity.Reward, error)
	// List returns the catalog ordered by points cost ascending
	List(ctx context.Context) ([]*entity.Reward, error)
}
