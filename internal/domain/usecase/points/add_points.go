package points

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// AddPoints credits a user's balance and appends an earn entry in one transaction
func (s *Service) AddPoints(ctx context.Context, req usecase.AddPointsRequest) (*usecase.AddPointsResult, error) {
	desc, err := s.validator.ValidateAddPoints(req)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
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
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
	}

	replay, found, err := s.idempotency.CheckAddPoints(txCtx, req.UserID, req.IdempotencyKey, req.Amount, profile.Points())
	if err != nil {
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
	}
	if found {
		s.logger.Info("Credit replayed for idempotency key", map[string]any{
			"user_id":        req.UserID,
			"transaction_id": replay.TransactionID,
		})
		return replay, nil
	}

	if _, err := entity.AddPoints(profile.Points(), req.Amount); err != nil {
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
	}

	newBalance, err := profiles.Credit(txCtx, req.UserID, req.Amount)
	if err != nil {
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
	}

	tx, err := entity.NewEarnTransaction(req.UserID, req.Amount, desc, s.timeProvider)
	if err != nil {
		return nil, err
	}
	tx.WithIdempotencyKey(req.IdempotencyKey)

	if err := s.uow.GetLedgerRepository(txCtx).Create(txCtx, tx); err != nil {
		s.logger.Error("Failed to record earn transaction", map[string]any{
			"user_id": req.UserID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, errs.NewPointsError(req.UserID, "earn", req.Amount, fmt.Errorf("commit: %w", err))
	}
	committed = true

	s.metrics.PointsEarned(req.Amount)
	s.logger.Info("Points added", map[string]any{
		"user_id":        req.UserID,
		"amount":         req.Amount,
		"new_balance":    newBalance,
		"transaction_id": tx.ID,
	})

	return &usecase.AddPointsResult{
		NewBalance:    newBalance,
		TransactionID: tx.ID,
	}, nil
}
