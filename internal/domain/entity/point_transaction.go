package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

// TransactionType is the direction of a ledger movement
type TransactionType string

// Transaction types
const (
	TypeEarn   TransactionType = "earn"
	TypeRedeem TransactionType = "redeem"
)

// PointTransaction is an immutable ledger entry. Amount is signed:
// positive for earn, negative for redeem.
type PointTransaction struct {
	ID             string
	UserID         string
	Type           TransactionType
	Amount         int64
	Description    string
	IdempotencyKey string // Empty when the client supplied none
	CreatedAt      time.Time
}

// NewEarnTransaction builds a ledger entry crediting amount points
func NewEarnTransaction(userID string, amount int64, description string, timeProvider coreport.TimeProvider) (*PointTransaction, error) {
	return newPointTransaction(userID, TypeEarn, amount, description, timeProvider)
}

// NewRedeemTransaction builds a ledger entry debiting amount points
func NewRedeemTransaction(userID string, amount int64, description string, timeProvider coreport.TimeProvider) (*PointTransaction, error) {
	return newPointTransaction(userID, TypeRedeem, amount, description, timeProvider)
}

func newPointTransaction(
	userID string,
	txType TransactionType,
	amount int64,
	description string,
	timeProvider coreport.TimeProvider,
) (*PointTransaction, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: unknown transaction type %s", errs.ErrInvalidRequest, txType)
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	desc, err := NormalizeDescription(description)
	if err != nil {
		return nil, err
	}

	signed := amount
	if txType == TypeRedeem {
		signed = -amount
	}

	return &PointTransaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        txType,
		Amount:      signed,
		Description: desc,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// WithIdempotencyKey attaches a client-supplied key to the entry
func (t *PointTransaction) WithIdempotencyKey(key string) *PointTransaction {
	t.IdempotencyKey = strings.TrimSpace(key)
	return t
}

// IsCredit returns true if this entry increases the balance
func (t *PointTransaction) IsCredit() bool {
	return t.Type == TypeEarn
}

// IsDebit returns true if this entry decreases the balance
func (t *PointTransaction) IsDebit() bool {
	return t.Type == TypeRedeem
}

// AbsAmount returns the unsigned number of points moved
func (t *PointTransaction) AbsAmount() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// IsValidTransactionType validates a ledger type string
func IsValidTransactionType(txType string) bool {
	return txType == string(TypeEarn) || txType == string(TypeRedeem)
}

// SumAmounts totals the signed amounts of a set of entries
func SumAmounts(entries []*PointTransaction) int64 {
	var total int64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}
