package profile

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

// Service implements usecase.ProfileUseCase
type Service struct {
	profiles     persistence.ProfileRepository
	ledger       persistence.LedgerRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	retrier      coreport.Retrier
}

var _ usecase.ProfileUseCase = (*Service)(nil)

// NewService creates a new profile service
func NewService(
	profiles persistence.ProfileRepository,
	ledger persistence.LedgerRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	retrier coreport.Retrier,
) *Service {
	return &Service{
		profiles:     profiles,
		ledger:       ledger,
		timeProvider: timeProvider,
		logger:       logger,
		retrier:      retrier,
	}
}

// GetUserProfile returns the caller's profile with recent activity.
// Profiles missing for an authenticated principal are created with a zero balance.
func (s *Service) GetUserProfile(ctx context.Context, principal entity.Principal) (*entity.ProfileView, error) {
	if principal.IsZero() {
		return nil, errs.ErrUnauthenticated
	}

	var view *entity.ProfileView
	err := s.retrier.Do(ctx, func(ctx context.Context) error {
		p, err := s.getOrCreate(ctx, principal)
		if err != nil {
			return err
		}

		recent, err := s.ledger.ListRecent(ctx, p.ID, entity.RecentActivityLimit)
		if err != nil {
			return err
		}

		view = &entity.ProfileView{Profile: p, RecentActivity: recent}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

func (s *Service) getOrCreate(ctx context.Context, principal entity.Principal) (*entity.Profile, error) {
	p, err := s.profiles.GetByID(ctx, principal.UserID)
	if err == nil {
		return p, nil
	}
	if !errs.IsProfileNotFoundError(err) {
		return nil, err
	}

	p, err = entity.NewProfile(principal.UserID, principal.Email, "", s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.Create(ctx, p); err != nil {
		// A concurrent request may have created it first
		if errors.Is(err, errs.ErrDuplicateEmail) {
			return s.profiles.GetByID(ctx, principal.UserID)
		}
		return nil, err
	}

	s.logger.Info("Profile created on first access", map[string]any{
		"user_id": p.ID,
		"email":   p.Email,
	})

	return p, nil
}
