package usecase

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
)

// ProfileUseCase reads the caller's own profile
type ProfileUseCase interface {
	// GetUserProfile returns the caller's profile and up to ten recent ledger entries.
	// A missing profile is created on the fly.
	GetUserProfile(ctx context.Context, principal entity.Principal) (*entity.ProfileView, error)
}
