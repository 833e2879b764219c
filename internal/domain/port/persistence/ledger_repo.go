package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// LedgerRepository is the append-only store of point transactions
type LedgerRepository interface {
	// Create appends an entry
	//
	// Possible errors:
	// - ErrDuplicateIdempotencyKey: If the user already used the entry's key
	// - ErrProfileNotFound: If the referenced profile does not exist
	Create(ctx context.Context, tx *entity.PointTransaction) error

	// GetByID retrieves an entry; ErrTransactionNotFound if missing
	GetByID(ctx context.Context, id string) (*entity.PointTransaction, error)

	// GetByIdempotencyKey finds the entry a user recorded under key; ErrTransactionNotFound if none
	GetByIdempotencyKey(ctx context.Context, userID, key string) (*entity.PointTransaction, error)

	// ListRecent returns up to limit entries for the user, newest first
	ListRecent(ctx context.Context, userID string, limit int) ([]*entity.PointTransaction, error)

	// SumByUser returns the sum of signed amounts and the number of entries
	SumByUser(ctx context.Context, userID string) (sum int64, count int64, err error)
}
