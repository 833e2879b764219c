package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/persistence"
)

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *persistence.MockProfileRepository, *persistence.MockLedgerRepository) {
	profiles := persistence.NewMockProfileRepository(t)
	ledger := persistence.NewMockLedgerRepository(t)

	timeProvider := core.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	logger := core.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()

	retrier := core.NewMockRetrier(t)
	retrier.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, op func(context.Context) error) error {
			return op(ctx)
		}).Maybe()

	return NewService(profiles, ledger, timeProvider, logger, retrier), profiles, ledger
}

func TestService_GetUserProfile(t *testing.T) {
	ctx := context.Background()
	principal := entity.Principal{UserID: "user-1", Email: "Giulia@Example.com", SessionID: "s"}

	t.Run("should return the profile with recent activity", func(t *testing.T) {
		svc, profiles, ledger := setup(t)

		stored := entity.RestoreProfile("user-1", "giulia@example.com", "Giulia", 320, false, fixedTime, fixedTime)
		profiles.EXPECT().GetByID(ctx, "user-1").Return(stored, nil).Once()
		ledger.EXPECT().ListRecent(ctx, "user-1", entity.RecentActivityLimit).Return([]*entity.PointTransaction{
			{ID: "t2", Amount: -80}, {ID: "t1", Amount: 400},
		}, nil).Once()

		view, err := svc.GetUserProfile(ctx, principal)

		require.NoError(t, err)
		assert.Equal(t, int64(320), view.Profile.Points())
		assert.Len(t, view.RecentActivity, 2)
		assert.Equal(t, "t2", view.RecentActivity[0].ID)
	})

	t.Run("should create a missing profile with zero points", func(t *testing.T) {
		svc, profiles, ledger := setup(t)

		profiles.EXPECT().GetByID(ctx, "user-1").Return(nil, errs.ErrProfileNotFound).Once()
		profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.ID == "user-1" && p.Email == "giulia@example.com" && p.Name == "giulia" && p.Points() == 0
		})).Return(nil).Once()
		ledger.EXPECT().ListRecent(ctx, "user-1", entity.RecentActivityLimit).Return(nil, nil).Once()

		view, err := svc.GetUserProfile(ctx, principal)

		require.NoError(t, err)
		assert.Equal(t, int64(0), view.Profile.Points())
		assert.Empty(t, view.RecentActivity)
	})

	t.Run("should re-read when a concurrent request created the profile", func(t *testing.T) {
		svc, profiles, ledger := setup(t)

		stored := entity.RestoreProfile("user-1", "giulia@example.com", "giulia", 0, false, fixedTime, fixedTime)
		profiles.EXPECT().GetByID(ctx, "user-1").Return(nil, errs.ErrProfileNotFound).Once()
		profiles.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateEmail).Once()
		profiles.EXPECT().GetByID(ctx, "user-1").Return(stored, nil).Once()
		ledger.EXPECT().ListRecent(ctx, "user-1", entity.RecentActivityLimit).Return(nil, nil).Once()

		view, err := svc.GetUserProfile(ctx, principal)

		require.NoError(t, err)
		assert.Same(t, stored, view.Profile)
	})

	t.Run("should reject an anonymous caller", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.GetUserProfile(ctx, entity.Principal{})

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		svc, profiles, _ := setup(t)
		profiles.EXPECT().GetByID(ctx, "user-1").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := svc.GetUserProfile(ctx, principal)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
