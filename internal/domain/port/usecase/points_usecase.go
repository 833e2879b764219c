package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// RedeemRequest asks the redemption engine to convert points into a reward code
type RedeemRequest struct {
	UserID         string
	Amount         int64
	Description    string
	IdempotencyKey string  // Optional
	RewardID       *string // Set for catalog redemptions
}

// RedeemResult is returned for a successful (or replayed) redemption
type RedeemResult struct {
	NewBalance    int64
	TransactionID string
	RewardCode    string
	Replayed      bool // True when an earlier result was returned for the same idempotency key
}

// AddPointsRequest credits points to a user
type AddPointsRequest struct {
	UserID         string
	Amount         int64
	Description    string
	IdempotencyKey string
}

// AddPointsResult is returned after a credit
type AddPointsResult struct {
	NewBalance    int64
	TransactionID string
	Replayed      bool
}

// PointsUseCase is the canonical path for every balance change
type PointsUseCase interface {
	// Redeem debits amount, appends a redeem entry and issues a unique code in one transaction
	Redeem(ctx context.Context, req RedeemRequest) (*RedeemResult, error)

	// AddPoints credits amount and appends an earn entry in one transaction
	AddPoints(ctx context.Context, req AddPointsRequest) (*AddPointsResult, error)

	// CheckLedger compares the stored balance with the sum of the user's ledger
	CheckLedger(ctx context.Context, userID string) (*entity.LedgerCheck, error)
}
