package catalog

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// Service lists catalog rewards and redeems them through the points engine
type Service struct {
	rewards persistence.RewardRepository
	points  usecase.PointsUseCase
	logger  coreport.Logger
	retrier coreport.Retrier
}

var _ usecase.CatalogUseCase = (*Service)(nil)

// NewService creates a new catalog service
func NewService(
	rewards persistence.RewardRepository,
	points usecase.PointsUseCase,
	logger coreport.Logger,
	retrier coreport.Retrier,
) *Service {
	return &Service{
		rewards: rewards,
		points:  points,
		logger:  logger,
		retrier: retrier,
	}
}

// ListRewards returns the catalog, cheapest first
func (s *Service) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	var rewards []*entity.Reward
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		r, err := s.rewards.List(ctx)
		rewards = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

// RedeemReward redeems the reward's points cost for the caller.
// The reward ID is recorded on the issued code.
func (s *Service) RedeemReward(
	ctx context.Context,
	caller entity.Principal,
	rewardID, idempotencyKey string,
) (*usecase.RedeemResult, *entity.Reward, error) {
	if caller.IsZero() {
		return nil, nil, errs.ErrUnauthenticated
	}

	rewardID = strings.TrimSpace(rewardID)
	if rewardID == "" {
		return nil, nil, errs.ErrRewardNotFound
	}

	var reward *entity.Reward
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		r, err := s.rewards.GetByID(ctx, rewardID)
		reward = r
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	result, err := s.points.Redeem(ctx, usecase.RedeemRequest{
		UserID:         caller.UserID,
		Amount:         reward.PointsCost,
		Description:    reward.RedemptionDescription(),
		IdempotencyKey: idempotencyKey,
		RewardID:       &reward.ID,
	})
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("Catalog reward redeemed", map[string]any{
		"user_id":        caller.UserID,
		"reward_id":      reward.ID,
		"reward_slug":    reward.Slug,
		"transaction_id": result.TransactionID,
		"replayed":       result.Replayed,
	})

	return result, reward, nil
}
