package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
)

// FulfillmentStatus is derived from FulfilledAt
type FulfillmentStatus string

// Fulfillment states
const (
	StatusPending   FulfillmentStatus = "pending"
	StatusFulfilled FulfillmentStatus = "fulfilled"
)

// RewardCode is the claim token produced by a redemption.
// It moves from pending to fulfilled exactly once.
type RewardCode struct {
	ID            string
	TransactionID string
	UserID        string
	RewardID      *string // Set for catalog redemptions
	Code          string
	CreatedAt     time.Time
	FulfilledAt   *time.Time
}

// NewRewardCode creates a pending reward code for a redeem transaction
func NewRewardCode(tx *PointTransaction, code string, rewardID *string) (*RewardCode, error) {
	if tx == nil || !tx.IsDebit() {
		return nil, errs.ErrInvalidRequest
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &RewardCode{
		ID:            uuid.NewString(),
		TransactionID: tx.ID,
		UserID:        tx.UserID,
		RewardID:      rewardID,
		Code:          code,
		CreatedAt:     tx.CreatedAt,
	}, nil
}

// Status returns pending or fulfilled
func (r *RewardCode) Status() FulfillmentStatus {
	if r.FulfilledAt != nil {
		return StatusFulfilled
	}
	return StatusPending
}

// IsFulfilled reports whether the code has been handed out
func (r *RewardCode) IsFulfilled() bool {
	return r.FulfilledAt != nil
}

// MarkFulfilled sets the fulfillment timestamp once
func (r *RewardCode) MarkFulfilled(at time.Time) error {
	if r.FulfilledAt != nil {
		return errs.NewAlreadyFulfilledError(r.TransactionID, r.Code)
	}
	r.FulfilledAt = &at
	return nil
}

// Redemption joins a reward code with its ledger entry and owner for admin views
type Redemption struct {
	Code        *RewardCode
	Transaction *PointTransaction
	UserEmail   string
	UserName    string
	RewardName  string
}
