package migration

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
)

// Starter catalog for development databases, keyed by name
var defaultRewards = map[string]int64{
	"Free Coffee":       100,
	"Pastry of the Day": 150,
	"10% Discount":      300,
	"Branded Mug":       750,
}

// CreateDefaultRewards seeds the starter catalog when it is empty
func CreateDefaultRewards(ctx context.Context, rewards persistence.RewardRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	existing, err := rewards.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for name, cost := range defaultRewards {
		reward, err := entity.NewReward(name, cost, timeProvider)
		if err != nil {
			return err
		}
		if err := rewards.Create(ctx, reward); err != nil && !errors.Is(err, errs.ErrDuplicateReward) {
			return err
		}
	}

	logger.Info("Seeded default reward catalog", map[string]any{"count": len(defaultRewards)})
	return nil
}
