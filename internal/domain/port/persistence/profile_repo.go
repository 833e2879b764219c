package persistence

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// ProfileRepository defines access to the per-user profile and its points balance.
// The balance is only changed through Credit and Debit, which guard the row in SQL.
type ProfileRepository interface {
	// GetByID retrieves a profile by principal ID
	//
	// Possible errors:
	// - ErrProfileNotFound: If no profile exists for the ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Profile, error)

	// GetByIDForUpdate retrieves a profile and holds a row lock until the
	// surrounding transaction ends. Must be called inside a unit of work.
	//
	// Possible errors:
	// - ErrProfileNotFound: If no profile exists for the ID
	// - ErrProfileLocked: If the lock could not be acquired in time
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Profile, error)

	// GetByEmail retrieves a profile by its lowercased email
	//
	// Possible errors:
	// - ErrProfileNotFound: If no profile has the email
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Create inserts a new profile
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the ID or email is already taken
	// - ErrConstraintViolation: If the row violates a check constraint
	Create(ctx context.Context, profile *entity.Profile) error

	// Credit adds amount to the balance and returns the new balance
	//
	// Possible errors:
	// - ErrProfileNotFound: If the profile doesn't exist
	// - ErrAmountOverflow: If the balance would overflow
	Credit(ctx context.Context, id string, amount int64) (int64, error)

	// Debit subtracts amount only if the balance covers it and returns the new balance.
	//
	// Possible errors:
	// - ErrInsufficientPoints: If the guarded update touched no row
	// - ErrProfileNotFound: If the profile doesn't exist
	Debit(ctx context.Context, id string, amount int64) (int64, error)

	// SetAdmin updates the admin flag
	SetAdmin(ctx context.Context, id string, isAdmin bool) error

	// List returns all profiles, newest first
	List(ctx context.Context) ([]*entity.Profile, error)
}
