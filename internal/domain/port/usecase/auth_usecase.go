package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/identity"
)

// SignUpRequest carries registration input
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
}

// AuthUseCase defines account and session operations
type AuthUseCase interface {
	// SignUp registers the account and creates its profile.
	// The account is removed again if the profile cannot be stored.
	SignUp(ctx context.Context, req SignUpRequest) (*entity.Profile, error)

	SignIn(ctx context.Context, email, password string) (*identity.Session, error)

	SignOut(ctx context.Context, principal entity.Principal) error

	// Authenticate resolves a session token into a principal
	Authenticate(ctx context.Context, token string) (entity.Principal, error)

	// EnsureAdmin makes sure the configured administrator account exists
	EnsureAdmin(ctx context.Context, email, password, name string) error
}
