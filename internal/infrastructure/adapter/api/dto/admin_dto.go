package dto

import (
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// AddPointsByEmailRequest is the body of POST /admin/points
type AddPointsByEmailRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"required"`
}

// CreateRewardRequest is the body of POST /admin/rewards
type CreateRewardRequest struct {
	Name       string `json:"name" binding:"required,max=200"`
	PointsCost int64  `json:"pointsCost" binding:"required,gt=0"`
}

// RedemptionResponse is a reward code with its ledger entry and owner
type RedemptionResponse struct {
	ID          string              `json:"id"`
	Code        string              `json:"code"`
	Status      string              `json:"status"`
	FulfilledAt *time.Time          `json:"fulfilledAt"`
	RewardID    *string             `json:"rewardId,omitempty"`
	RewardName  string              `json:"rewardName,omitempty"`
	Transaction TransactionResponse `json:"transaction"`
	User        RedemptionUser      `json:"user"`
}

// RedemptionUser identifies the owner of a redemption
type RedemptionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// FulfillResponse is returned after fulfilling a reward
type FulfillResponse struct {
	TransactionID string     `json:"transactionId"`
	Code          string     `json:"code"`
	FulfilledAt   *time.Time `json:"fulfilledAt"`
}

// LedgerCheckResponse reports the reconciliation of one user
type LedgerCheckResponse struct {
	UserID     string `json:"userId"`
	Balance    int64  `json:"balance"`
	LedgerSum  int64  `json:"ledgerSum"`
	EntryCount int64  `json:"entryCount"`
	Consistent bool   `json:"consistent"`
}

// NewRedemptionResponse maps an admin redemption row
func NewRedemptionResponse(r *entity.Redemption) RedemptionResponse {
	resp := RedemptionResponse{
		ID:          r.Code.ID,
		Code:        r.Code.Code,
		Status:      string(r.Code.Status()),
		FulfilledAt: r.Code.FulfilledAt,
		RewardID:    r.Code.RewardID,
		RewardName:  r.RewardName,
		User:        RedemptionUser{ID: r.Code.UserID, Email: r.UserEmail, Name: r.UserName},
	}
	if r.Transaction != nil {
		resp.Transaction = NewTransactionResponse(r.Transaction)
	}
	return resp
}

// NewLedgerCheckResponse maps a ledger check
func NewLedgerCheckResponse(c *entity.LedgerCheck) LedgerCheckResponse {
	return LedgerCheckResponse{
		UserID:     c.UserID,
		Balance:    c.Balance,
		LedgerSum:  c.LedgerSum,
		EntryCount: c.EntryCount,
		Consistent: c.Consistent(),
	}
}
