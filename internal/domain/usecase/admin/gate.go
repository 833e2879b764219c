package admin

import (
	"context"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
)

// Capability is issued by Gate.Require to a caller whose profile carries the admin flag.
// Admin operations take one instead of re-deriving trust from the request.
type Capability struct {
	admin *entity.Profile
}

// AdminID returns the ID of the administrator holding the capability
func (c Capability) AdminID() string {
	return c.admin.ID
}

// Gate checks the admin flag against the stored profile on every call
type Gate struct {
	profiles persistence.ProfileRepository
	logger   coreport.Logger
}

// NewGate creates a new Gate
func NewGate(profiles persistence.ProfileRepository, logger coreport.Logger) *Gate {
	return &Gate{profiles: profiles, logger: logger}
}

// Require re-reads the caller's profile and fails with ErrUnauthorized unless it is an admin.
// A caller without a session gets ErrUnauthenticated.
func (g *Gate) Require(ctx context.Context, caller entity.Principal) (Capability, error) {
	if caller.IsZero() {
		return Capability{}, errs.ErrUnauthenticated
	}

	profile, err := g.profiles.GetByID(ctx, caller.UserID)
	if err != nil {
		if errs.IsProfileNotFoundError(err) {
			g.logger.Warn("Admin check for caller without profile", map[string]any{
				"user_id": caller.UserID,
			})
			return Capability{}, errs.ErrUnauthorized
		}
		return Capability{}, err
	}

	if !profile.IsAdmin {
		g.logger.Warn("Non-admin attempted admin operation", map[string]any{
			"user_id": caller.UserID,
			"email":   profile.Email,
		})
		return Capability{}, errs.ErrUnauthorized
	}

	return Capability{admin: profile}, nil
}
