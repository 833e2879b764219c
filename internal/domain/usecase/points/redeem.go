package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// Redemption stages reported in RedemptionError
const (
	stageBegin  = "begin"
	stageLock   = "lock_profile"
	stageReplay = "idempotency"
	stageDebit  = "debit"
	stageLedger = "ledger"
	stageCode   = "reward_code"
	stageCommit = "commit"
)

// Redeem converts points into a reward code.
//
// The debit, the redeem ledger entry and the reward code are written in one
// database transaction. If any of them fails the transaction is rolled back
// and the balance is left untouched. The debit itself is never retried.
func (s *Service) Redeem(ctx context.Context, req usecase.RedeemRequest) (*usecase.RedeemResult, error) {
	desc, err := s.validator.ValidateRedeem(req)
	if err != nil {
		return nil, err
	}

	result, err := s.redeem(ctx, req, desc)
	if err != nil {
		s.recordRedemptionFailure(req, err)
		return nil, err
	}

	if result.Replayed {
		s.metrics.Redemption(coreport.OutcomeReplayed, 0)
		s.logger.Info("Redemption replayed for idempotency key", map[string]any{
			"user_id":        req.UserID,
			"transaction_id": result.TransactionID,
		})
		return result, nil
	}

	s.metrics.Redemption(coreport.OutcomeSuccess, req.Amount)
	s.logger.Info("Points redeemed", map[string]any{
		"user_id":        req.UserID,
		"amount":         req.Amount,
		"new_balance":    result.NewBalance,
		"transaction_id": result.TransactionID,
	})

	return result, nil
}

func (s *Service) redeem(ctx context.Context, req usecase.RedeemRequest, desc string) (*usecase.RedeemResult, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageBegin, err)
	}

	committed := false
	defer func() {
		if !committed {
			s.rollback(txCtx, req.UserID)
		}
	}()

	profiles := s.uow.GetProfileRepository(txCtx)

	profile, err := profiles.GetByIDForUpdate(txCtx, req.UserID)
	if err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageLock, err)
	}

	replay, found, err := s.idempotency.CheckRedeem(txCtx, req.UserID, req.IdempotencyKey, req.Amount, profile.Points())
	if err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageReplay, err)
	}
	if found {
		return replay, nil
	}

	if !profile.CanRedeem(req.Amount) {
		return nil, errs.NewInsufficientPointsError(req.UserID, req.Amount, profile.Points())
	}

	newBalance, err := profiles.Debit(txCtx, req.UserID, req.Amount)
	if err != nil {
		if errs.IsInsufficientPointsError(err) {
			return nil, errs.NewInsufficientPointsError(req.UserID, req.Amount, profile.Points())
		}
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageDebit, err)
	}

	tx, err := entity.NewRedeemTransaction(req.UserID, req.Amount, desc, s.timeProvider)
	if err != nil {
		return nil, err
	}
	tx.WithIdempotencyKey(req.IdempotencyKey)

	if err := s.uow.GetLedgerRepository(txCtx).Create(txCtx, tx); err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageLedger, err)
	}

	code, err := s.issueCode(txCtx, tx, req.RewardID)
	if err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageCode, err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, errs.NewRedemptionError(req.UserID, req.Amount, stageCommit, err)
	}
	committed = true

	return &usecase.RedeemResult{
		NewBalance:    newBalance,
		TransactionID: tx.ID,
		RewardCode:    code.Code,
	}, nil
}

// issueCode generates codes until one is stored without a uniqueness conflict.
// A conflicting insert affects no row and does not abort the transaction.
func (s *Service) issueCode(ctx context.Context, tx *entity.PointTransaction, rewardID *string) (*entity.RewardCode, error) {
	codes := s.uow.GetRewardCodeRepository(ctx)

	var lastErr error
	for attempt := 1; attempt <= s.maxCodeAttempts; attempt++ {
		value, err := s.codes.RewardCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate reward code: %w", err)
		}

		code, err := entity.NewRewardCode(tx, value, rewardID)
		if err != nil {
			return nil, err
		}

		err = codes.Insert(ctx, code)
		if err == nil {
			return code, nil
		}
		if !errs.IsCollisionError(err) {
			return nil, err
		}

		lastErr = err
		s.logger.Warn("Reward code collision, regenerating", map[string]any{
			"transaction_id": tx.ID,
			"attempt":        attempt,
		})
	}

	return nil, fmt.Errorf("gave up after %d attempts: %w", s.maxCodeAttempts, lastErr)
}

func (s *Service) recordRedemptionFailure(req usecase.RedeemRequest, err error) {
	fields := map[string]any{
		"user_id": req.UserID,
		"amount":  req.Amount,
		"error":   err.Error(),
	}

	var redemptionErr *errs.RedemptionError
	if errors.As(err, &redemptionErr) {
		fields = redemptionErr.LogFields()
	}

	switch {
	case errs.IsInsufficientPointsError(err):
		s.metrics.Redemption(coreport.OutcomeInsufficient, 0)
		s.logger.Info("Redemption rejected: insufficient points", fields)
	case errs.IsCollisionError(err):
		s.metrics.Redemption(coreport.OutcomeCollision, 0)
		s.logger.Error("Redemption failed: could not issue a unique code", fields)
	case errs.IsClientError(err):
		s.metrics.Redemption(coreport.OutcomeFailed, 0)
		s.logger.Warn("Redemption rejected", fields)
	default:
		s.metrics.Redemption(coreport.OutcomeFailed, 0)
		s.logger.Error("Redemption failed and was rolled back", fields)
	}
}
