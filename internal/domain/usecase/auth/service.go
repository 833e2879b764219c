package auth

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/identity"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// MinPasswordLength is the shortest password accepted at sign-up
const MinPasswordLength = 8

// Service implements usecase.AuthUseCase on top of the identity gateway
type Service struct {
	gateway      identity.Gateway
	profiles     persistence.ProfileRepository
	verification usecase.VerificationUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AuthUseCase = (*Service)(nil)

// NewService creates a new auth service. verification may be nil, in which
// case no code is mailed after sign-up.
func NewService(
	gateway identity.Gateway,
	profiles persistence.ProfileRepository,
	verification usecase.VerificationUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		gateway:      gateway,
		profiles:     profiles,
		verification: verification,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// SignUp registers the account and stores its zero-balance profile.
// If the profile cannot be stored the account is deleted again.
func (s *Service) SignUp(ctx context.Context, req usecase.SignUpRequest) (*entity.Profile, error) {
	email, err := entity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, errs.ErrInvalidPassword
	}

	principal, err := s.gateway.Register(ctx, email, req.Password)
	if err != nil {
		return nil, err
	}

	profile, err := entity.NewProfile(principal.UserID, email, req.Name, s.timeProvider)
	if err == nil {
		err = s.profiles.Create(ctx, profile)
	}
	if err != nil {
		s.compensateRegistration(ctx, principal, err)
		return nil, err
	}

	s.logger.Info("User signed up", map[string]any{
		"user_id": profile.ID,
		"email":   profile.Email,
	})

	if s.verification != nil {
		if err := s.verification.SendVerificationEmail(ctx, email); err != nil {
			s.logger.Warn("Sign-up verification email not sent", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
	}

	return profile, nil
}

func (s *Service) compensateRegistration(ctx context.Context, principal entity.Principal, cause error) {
	fields := map[string]any{
		"user_id": principal.UserID,
		"email":   principal.Email,
		"cause":   cause.Error(),
	}

	if err := s.gateway.Delete(ctx, principal.UserID); err != nil {
		fields["error"] = err.Error()
		s.logger.Error("Failed to delete account after profile creation failed", fields)
		return
	}

	s.logger.Warn("Account deleted after profile creation failed", fields)
}

// SignIn checks credentials and opens a session
func (s *Service) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}
	if password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	session, err := s.gateway.Authenticate(ctx, normalized, password)
	if err != nil {
		s.logger.Debug("Sign-in rejected", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User signed in", map[string]any{
		"user_id":    session.Principal.UserID,
		"session_id": session.Principal.SessionID,
	})

	return session, nil
}

// SignOut revokes the caller's session
func (s *Service) SignOut(ctx context.Context, principal entity.Principal) error {
	if principal.IsZero() {
		return errs.ErrUnauthenticated
	}

	if err := s.gateway.Revoke(ctx, principal); err != nil {
		return err
	}

	s.logger.Info("User signed out", map[string]any{
		"user_id":    principal.UserID,
		"session_id": principal.SessionID,
	})

	return nil
}

// Authenticate resolves a bearer token into a principal
func (s *Service) Authenticate(ctx context.Context, token string) (entity.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entity.Principal{}, errs.ErrUnauthenticated
	}
	return s.gateway.Resolve(ctx, token)
}

// EnsureAdmin makes sure an account for email exists, is verified and has an admin profile
func (s *Service) EnsureAdmin(ctx context.Context, email, password, name string) error {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	existing, err := s.profiles.GetByEmail(ctx, normalized)
	switch {
	case err == nil:
		if existing.IsAdmin {
			s.logger.Debug("Admin account already present", map[string]any{"email": normalized})
			return nil
		}
		if err := s.profiles.SetAdmin(ctx, existing.ID, true); err != nil {
			return err
		}
		s.logger.Info("Existing profile promoted to admin", map[string]any{
			"user_id": existing.ID,
			"email":   normalized,
		})
		return nil
	case !errs.IsProfileNotFoundError(err):
		return err
	}

	principal, err := s.gateway.Register(ctx, normalized, password)
	if err != nil && !errors.Is(err, errs.ErrDuplicateEmail) {
		return err
	}

	if err := s.gateway.MarkEmailVerified(ctx, normalized); err != nil {
		return err
	}

	if principal.IsZero() {
		// The account exists without a profile; sign in once to learn its ID
		session, err := s.gateway.Authenticate(ctx, normalized, password)
		if err != nil {
			return err
		}
		principal = session.Principal
		if err := s.gateway.Revoke(ctx, principal); err != nil {
			s.logger.Warn("Failed to revoke bootstrap session", map[string]any{
				"user_id": principal.UserID,
				"error":   err.Error(),
			})
		}
	}

	profile, err := entity.NewProfile(principal.UserID, normalized, name, s.timeProvider)
	if err != nil {
		return err
	}
	profile.IsAdmin = true

	if err := s.profiles.Create(ctx, profile); err != nil {
		return err
	}

	s.logger.Info("Admin account bootstrapped", map[string]any{
		"user_id": profile.ID,
		"email":   normalized,
	})

	return nil
}
