package dto

import (
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// PointsRequest is the body of self-service earn and redeem calls
type PointsRequest struct {
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	Description    string `json:"description" binding:"required"`
	IdempotencyKey string `json:"idempotencyKey" binding:"omitempty,max=128"`
}

// RedeemRewardRequest is the optional body of a catalog redemption
type RedeemRewardRequest struct {
	IdempotencyKey string `json:"idempotencyKey" binding:"omitempty,max=128"`
}

// RedeemResponse is returned by both redemption routes
type RedeemResponse struct {
	NewPoints     int64  `json:"newPoints"`
	TransactionID string `json:"transactionId"`
	RewardCode    string `json:"rewardCode"`
	Replayed      bool   `json:"replayed,omitempty"`
	RewardID      string `json:"rewardId,omitempty"`
	RewardName    string `json:"rewardName,omitempty"`
}

// EarnResponse is returned after a credit
type EarnResponse struct {
	NewPoints     int64  `json:"newPoints"`
	TransactionID string `json:"transactionId"`
	Replayed      bool   `json:"replayed,omitempty"`
}

// TransactionResponse is one ledger entry
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRedeemResponse maps a redemption result
func NewRedeemResponse(r *usecase.RedeemResult) RedeemResponse {
	return RedeemResponse{
		NewPoints:     r.NewBalance,
		TransactionID: r.TransactionID,
		RewardCode:    r.RewardCode,
		Replayed:      r.Replayed,
	}
}

// NewEarnResponse maps a credit result
func NewEarnResponse(r *usecase.AddPointsResult) EarnResponse {
	return EarnResponse{NewPoints: r.NewBalance, TransactionID: r.TransactionID, Replayed: r.Replayed}
}

// NewTransactionResponse maps a ledger entry
func NewTransactionResponse(t *entity.PointTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}
