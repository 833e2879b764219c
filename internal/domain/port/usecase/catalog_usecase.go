package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// CatalogUseCase lists rewards and redeems them through the points engine
type CatalogUseCase interface {
	ListRewards(ctx context.Context) ([]*entity.Reward, error)
	RedeemReward(ctx context.Context, caller entity.Principal, rewardID, idempotencyKey string) (*RedeemResult, *entity.Reward, error)
}
