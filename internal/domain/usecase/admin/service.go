package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// DefaultCreditDescription is recorded when an admin credit has no description
const DefaultCreditDescription = "Points added by administrator"

// Service implements the admin-only operations
type Service struct {
	gate         *Gate
	profiles     persistence.ProfileRepository
	codes        persistence.RewardCodeRepository
	rewards      persistence.RewardRepository
	points       usecase.PointsUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	retrier      coreport.Retrier
}

var _ usecase.AdminUseCase = (*Service)(nil)

// NewService creates a new admin service
func NewService(
	gate *Gate,
	profiles persistence.ProfileRepository,
	codes persistence.RewardCodeRepository,
	rewards persistence.RewardRepository,
	points usecase.PointsUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	retrier coreport.Retrier,
) *Service {
	return &Service{
		gate:         gate,
		profiles:     profiles,
		codes:        codes,
		rewards:      rewards,
		points:       points,
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		retrier:      retrier,
	}
}

// AddPointsByEmail resolves the target by email and credits it through the points service
func (s *Service) AddPointsByEmail(
	ctx context.Context,
	caller entity.Principal,
	email string,
	amount int64,
	description string,
) (*usecase.AddPointsResult, error) {
	capability, err := s.gate.Require(ctx, caller)
	if err != nil {
		return nil, err
	}

	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		description = DefaultCreditDescription
	}

	var target *entity.Profile
	err = s.retrier.Do(ctx, func(ctx context.Context) error {
		p, err := s.profiles.GetByEmail(ctx, normalized)
		target = p
		return err
	})
	if err != nil {
		return nil, err
	}

	result, err := s.points.AddPoints(ctx, usecase.AddPointsRequest{
		UserID:      target.ID,
		Amount:      amount,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Admin credited points", map[string]any{
		"admin_id":    capability.AdminID(),
		"target_id":   target.ID,
		"email":       normalized,
		"amount":      amount,
		"new_balance": result.NewBalance,
	})

	return result, nil
}

// ListUsers returns every profile, newest first
func (s *Service) ListUsers(ctx context.Context, caller entity.Principal) ([]*entity.Profile, error) {
	if _, err := s.gate.Require(ctx, caller); err != nil {
		return nil, err
	}

	var profiles []*entity.Profile
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		p, err := s.profiles.List(ctx)
		profiles = p
		return err
	})
	return profiles, err
}

// ListRedemptions returns every reward code with its transaction and owner
func (s *Service) ListRedemptions(ctx context.Context, caller entity.Principal) ([]*entity.Redemption, error) {
	if _, err := s.gate.Require(ctx, caller); err != nil {
		return nil, err
	}

	var redemptions []*entity.Redemption
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		r, err := s.codes.ListRedemptions(ctx)
		redemptions = r
		return err
	})
	return redemptions, err
}

// FulfillReward marks the code of a redeem transaction as handed out.
// Only the first call sets the timestamp; later calls fail with ErrAlreadyFulfilled.
func (s *Service) FulfillReward(ctx context.Context, caller entity.Principal, transactionID string) (*entity.RewardCode, error) {
	capability, err := s.gate.Require(ctx, caller)
	if err != nil {
		return nil, err
	}

	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, errs.ErrInvalidRequest
	}

	updated, err := s.codes.MarkFulfilled(ctx, transactionID, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	code, err := s.codes.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if !updated {
		if code.IsFulfilled() {
			return nil, errs.NewAlreadyFulfilledError(transactionID, code.Code)
		}
		return nil, fmt.Errorf("%w: reward code %s was not updated", errs.ErrInternalServer, code.Code)
	}

	s.metrics.RewardFulfilled()
	s.logger.Info("Reward fulfilled", map[string]any{
		"admin_id":       capability.AdminID(),
		"transaction_id": transactionID,
		"code":           code.Code,
	})

	return code, nil
}

// CreateReward adds an entry to the reward catalog
func (s *Service) CreateReward(ctx context.Context, caller entity.Principal, name string, pointsCost int64) (*entity.Reward, error) {
	capability, err := s.gate.Require(ctx, caller)
	if err != nil {
		return nil, err
	}

	reward, err := entity.NewReward(name, pointsCost, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.rewards.Create(ctx, reward); err != nil {
		return nil, err
	}

	s.logger.Info("Reward created", map[string]any{
		"admin_id":    capability.AdminID(),
		"reward_id":   reward.ID,
		"slug":        reward.Slug,
		"points_cost": reward.PointsCost,
	})

	return reward, nil
}

// CheckLedger reconciles a user's balance against their ledger
func (s *Service) CheckLedger(ctx context.Context, caller entity.Principal, userID string) (*entity.LedgerCheck, error) {
	if _, err := s.gate.Require(ctx, caller); err != nil {
		return nil, err
	}
	return s.points.CheckLedger(ctx, userID)
}
