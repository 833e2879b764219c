package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// AdminUseCase groups privileged operations. Each call re-checks the caller's admin flag.
type AdminUseCase interface {
	AddPointsByEmail(ctx context.Context, caller entity.Principal, email string, amount int64, description string) (*AddPointsResult, error)
	ListUsers(ctx context.Context, caller entity.Principal) ([]*entity.Profile, error)
	ListRedemptions(ctx context.Context, caller entity.Principal) ([]*entity.Redemption, error)
	FulfillReward(ctx context.Context, caller entity.Principal, transactionID string) (*entity.RewardCode, error)
	CreateReward(ctx context.Context, caller entity.Principal, name string, pointsCost int64) (*entity.Reward, error)
	CheckLedger(ctx context.Context, caller entity.Principal, userID string) (*entity.LedgerCheck, error)
}
