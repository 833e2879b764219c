package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// IdempotencyHandler looks up earlier results recorded under a client-supplied key.
// It must be called with a transactional context that already holds the profile lock,
// so two requests carrying the same key cannot both miss.
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{uow: uow}
}

// findEntry returns the entry stored under key, or nil if the key is unused
func (h *IdempotencyHandler) findEntry(
	ctx context.Context,
	userID, key string,
	expected entity.TransactionType,
	amount int64,
) (*entity.PointTransaction, error) {
	if key == "" {
		return nil, nil
	}

	existing, err := h.uow.GetLedgerRepository(ctx).GetByIdempotencyKey(ctx, userID, key)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up idempotency key: %w", err)
	}

	// Same key reused for a different operation
	if existing.Type != expected || existing.AbsAmount() != amount {
		return nil, errs.ErrDuplicateIdempotencyKey
	}

	return existing, nil
}

// CheckRedeem returns the original result of a redemption made with key
func (h *IdempotencyHandler) CheckRedeem(
	ctx context.Context,
	userID, key string,
	amount int64,
	currentBalance int64,
) (*usecase.RedeemResult, bool, error) {
	existing, err := h.findEntry(ctx, userID, key, entity.TypeRedeem, amount)
	if err != nil || existing == nil {
		return nil, false, err
	}

	code, err := h.uow.GetRewardCodeRepository(ctx).GetByTransactionID(ctx, existing.ID)
	if err != nil {
		return nil, true, fmt.Errorf("failed to load reward code for replay: %w", err)
	}

	return &usecase.RedeemResult{
		NewBalance:    currentBalance,
		TransactionID: existing.ID,
		RewardCode:    code.Code,
		Replayed:      true,
	}, true, nil
}

// CheckAddPoints returns the original result of a credit made with key
func (h *IdempotencyHandler) CheckAddPoints(
	ctx context.Context,
	userID, key string,
	amount int64,
	currentBalance int64,
) (*usecase.AddPointsResult, bool, error) {
	existing, err := h.findEntry(ctx, userID, key, entity.TypeEarn, amount)
	if err != nil || existing == nil {
		return nil, false, err
	}

	return &usecase.AddPointsResult{
		NewBalance:    currentBalance,
		TransactionID: existing.ID,
		Replayed:      true,
	}, true, nil
}
