package identity

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// Session is an issued sign-in session
type Session struct {
	Principal entity.Principal
	Token     string
	ExpiresIn int64 // seconds
}

// Gateway is the identity provider: account registration, credential checks and sessions
type Gateway interface {
	// Register creates an account and returns its principal
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrInvalidPassword: If the password is rejected
	Register(ctx context.Context, email, password string) (entity.Principal, error)

	// Authenticate checks credentials and opens a session
	//
	// Possible errors:
	// - ErrInvalidCredentials: If email or password is wrong
	// - ErrEmailNotVerified: If verification is required and missing
	Authenticate(ctx context.Context, email, password string) (*Session, error)

	// Resolve returns the principal for a session token; ErrUnauthenticated if invalid or revoked
	Resolve(ctx context.Context, token string) (entity.Principal, error)

	// Revoke ends the session; revoking an unknown session is not an error
	Revoke(ctx context.Context, principal entity.Principal) error

	// Delete removes an account; used to undo a registration
	Delete(ctx context.Context, userID string) error

	// MarkEmailVerified flags the account for email as verified
	MarkEmailVerified(ctx context.Context, email string) error
}
