package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// RewardCodeRepository stores the claim codes produced by redemptions
type RewardCodeRepository interface {
	// Insert stores a new pending code
	//
	// Possible errors:
	// - ErrDuplicateCodeCollision: If the code value already exists
	// - ErrTransactionNotFound: If the referenced transaction doesn't exist
	Insert(ctx context.Context, code *entity.RewardCode) error

	// GetByTransactionID retrieves the code attached to a redeem transaction
	//
	// Possible errors:
	// - ErrRewardCodeNotFound: If the transaction has no code
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.RewardCode, error)

	// MarkFulfilled sets fulfilled_at only while it is still null.
	// Returns false when no pending row matched.
	MarkFulfilled(ctx context.Context, transactionID string, at time.Time) (bool, error)

	// ListRedemptions returns every code joined with its transaction and owner, newest first
	ListRedemptions(ctx context.Context) ([]*entity.Redemption, error)
}
