package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/persistence"
	usecasemocks "github.com/amirhossein-jamali/loyalty-service/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

var (
	adminCaller = entity.Principal{UserID: "admin-1", Email: "admin@example.com", SessionID: "s1"}
	userCaller  = entity.Principal{UserID: "user-1", Email: "user@example.com", SessionID: "s2"}
)

type fixture struct {
	ctx      context.Context
	profiles *persistence.MockProfileRepository
	codes    *persistence.MockRewardCodeRepository
	rewards  *persistence.MockRewardRepository
	points   *usecasemocks.MockPointsUseCase
	metrics  *core.MockMetrics
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		ctx:      context.Background(),
		profiles: persistence.NewMockProfileRepository(t),
		codes:    persistence.NewMockRewardCodeRepository(t),
		rewards:  persistence.NewMockRewardRepository(t),
		points:   usecasemocks.NewMockPointsUseCase(t),
		metrics:  core.NewMockMetrics(t),
	}

	logger := core.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	timeProvider := core.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()

	retrier := core.NewMockRetrier(t)
	retrier.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, op func(context.Context) error) error {
			return op(ctx)
		}).Maybe()

	f.service = NewService(
		NewGate(f.profiles, logger),
		f.profiles, f.codes, f.rewards, f.points,
		timeProvider, logger, f.metrics, retrier,
	)
	return f
}

func (f *fixture) asAdmin() {
	f.profiles.EXPECT().GetByID(f.ctx, adminCaller.UserID).
		Return(entity.RestoreProfile(adminCaller.UserID, adminCaller.Email, "Admin", 0, true, fixedTime, fixedTime), nil).Once()
}

func (f *fixture) asUser() {
	f.profiles.EXPECT().GetByID(f.ctx, userCaller.UserID).
		Return(entity.RestoreProfile(userCaller.UserID, userCaller.Email, "User", 0, false, fixedTime, fixedTime), nil).Once()
}

func TestGate_Require(t *testing.T) {
	t.Run("should reject an anonymous caller", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.gate.Require(f.ctx, entity.Principal{})

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("should reject a caller without profile", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().GetByID(f.ctx, "ghost").Return(nil, errs.ErrProfileNotFound).Once()

		_, err := f.service.gate.Require(f.ctx, entity.Principal{UserID: "ghost"})

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		f := newFixture(t)
		f.profiles.EXPECT().GetByID(f.ctx, adminCaller.UserID).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.service.gate.Require(f.ctx, adminCaller)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("should issue a capability to an admin", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		capability, err := f.service.gate.Require(f.ctx, adminCaller)

		require.NoError(t, err)
		assert.Equal(t, adminCaller.UserID, capability.AdminID())
	})
}

func TestService_RejectsNonAdminBeforeAnyMutation(t *testing.T) {
	testCases := []struct {
		name string
		call func(s *Service, ctx context.Context) error
	}{
		{"add points", func(s *Service, ctx context.Context) error {
			_, err := s.AddPointsByEmail(ctx, userCaller, "x@example.com", 10, "")
			return err
		}},
		{"list users", func(s *Service, ctx context.Context) error {
			_, err := s.ListUsers(ctx, userCaller)
			return err
		}},
		{"list redemptions", func(s *Service, ctx context.Context) error {
			_, err := s.ListRedemptions(ctx, userCaller)
			return err
		}},
		{"fulfill", func(s *Service, ctx context.Context) error {
			_, err := s.FulfillReward(ctx, userCaller, "tx-1")
			return err
		}},
		{"create reward", func(s *Service, ctx context.Context) error {
			_, err := s.CreateReward(ctx, userCaller, "Mug", 100)
			return err
		}},
		{"check ledger", func(s *Service, ctx context.Context) error {
			_, err := s.CheckLedger(ctx, userCaller, "user-9")
			return err
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.asUser()

			err := tc.call(f.service, f.ctx)

			assert.True(t, errs.IsUnauthorizedError(err))
			f.points.AssertNotCalled(t, "AddPoints", mock.Anything, mock.Anything)
			f.codes.AssertNotCalled(t, "MarkFulfilled", mock.Anything, mock.Anything, mock.Anything)
			f.rewards.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_AddPointsByEmail(t *testing.T) {
	t.Run("should credit the profile found by email with the default description", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		target := entity.RestoreProfile("user-7", "mario@example.com", "Mario", 40, false, fixedTime, fixedTime)
		f.profiles.EXPECT().GetByEmail(f.ctx, "mario@example.com").Return(target, nil).Once()
		f.points.EXPECT().AddPoints(f.ctx, usecase.AddPointsRequest{
			UserID:      "user-7",
			Amount:      60,
			Description: DefaultCreditDescription,
		}).Return(&usecase.AddPointsResult{NewBalance: 100, TransactionID: "tx-9"}, nil).Once()

		result, err := f.service.AddPointsByEmail(f.ctx, adminCaller, "  Mario@Example.com ", 60, "")

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.NewBalance)
	})

	t.Run("should report an unknown email as not found", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()
		f.profiles.EXPECT().GetByEmail(f.ctx, "nobody@example.com").Return(nil, errs.ErrProfileNotFound).Once()

		_, err := f.service.AddPointsByEmail(f.ctx, adminCaller, "nobody@example.com", 10, "bonus")

		assert.True(t, errs.IsProfileNotFoundError(err))
	})

	t.Run("should reject an invalid amount", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		_, err := f.service.AddPointsByEmail(f.ctx, adminCaller, "mario@example.com", -3, "bonus")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestService_FulfillReward(t *testing.T) {
	t.Run("should mark a pending code as fulfilled", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		fulfilledAt := fixedTime
		f.codes.EXPECT().MarkFulfilled(f.ctx, "tx-1", fixedTime).Return(true, nil).Once()
		f.codes.EXPECT().GetByTransactionID(f.ctx, "tx-1").
			Return(&entity.RewardCode{TransactionID: "tx-1", Code: "K7QX2-MPA9D", FulfilledAt: &fulfilledAt}, nil).Once()
		f.metrics.EXPECT().RewardFulfilled().Once()

		code, err := f.service.FulfillReward(f.ctx, adminCaller, "tx-1")

		require.NoError(t, err)
		assert.True(t, code.IsFulfilled())
		assert.Equal(t, entity.StatusFulfilled, code.Status())
	})

	t.Run("should fail the second fulfillment with already fulfilled", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		earlier := fixedTime.Add(-time.Hour)
		f.codes.EXPECT().MarkFulfilled(f.ctx, "tx-1", fixedTime).Return(false, nil).Once()
		f.codes.EXPECT().GetByTransactionID(f.ctx, "tx-1").
			Return(&entity.RewardCode{TransactionID: "tx-1", Code: "K7QX2-MPA9D", FulfilledAt: &earlier}, nil).Once()

		_, err := f.service.FulfillReward(f.ctx, adminCaller, "tx-1")

		assert.ErrorIs(t, err, errs.ErrAlreadyFulfilled)
		var typed *errs.AlreadyFulfilledError
		require.True(t, errors.As(err, &typed))
		assert.Equal(t, "K7QX2-MPA9D", typed.Code)
		f.metrics.AssertNotCalled(t, "RewardFulfilled")
	})

	t.Run("should report an unknown transaction as not found", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		f.codes.EXPECT().MarkFulfilled(f.ctx, "tx-404", fixedTime).Return(false, nil).Once()
		f.codes.EXPECT().GetByTransactionID(f.ctx, "tx-404").Return(nil, errs.ErrRewardCodeNotFound).Once()

		_, err := f.service.FulfillReward(f.ctx, adminCaller, "tx-404")

		assert.True(t, errs.IsNotFoundError(err))
	})

	t.Run("should reject a blank transaction ID", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		_, err := f.service.FulfillReward(f.ctx, adminCaller, " ")

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_CreateReward(t *testing.T) {
	t.Run("should store a new catalog entry", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()
		f.rewards.EXPECT().Create(f.ctx, mock.MatchedBy(func(r *entity.Reward) bool {
			return r.Name == "Coffee Mug" && r.Slug == "coffee-mug" && r.PointsCost == 300
		})).Return(nil).Once()

		reward, err := f.service.CreateReward(f.ctx, adminCaller, "Coffee Mug", 300)

		require.NoError(t, err)
		assert.Equal(t, fixedTime, reward.CreatedAt)
	})

	t.Run("should reject a zero cost", func(t *testing.T) {
		f := newFixture(t)
		f.asAdmin()

		_, err := f.service.CreateReward(f.ctx, adminCaller, "Coffee Mug", 0)

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestService_Lists(t *testing.T) {
	f := newFixture(t)
	f.asAdmin()
	f.asAdmin()

	f.profiles.EXPECT().List(f.ctx).Return([]*entity.Profile{{ID: "a"}, {ID: "b"}}, nil).Once()
	f.codes.EXPECT().ListRedemptions(f.ctx).Return([]*entity.Redemption{{UserEmail: "a@example.com"}}, nil).Once()

	users, err := f.service.ListUsers(f.ctx, adminCaller)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	redemptions, err := f.service.ListRedemptions(f.ctx, adminCaller)
	require.NoError(t, err)
	assert.Len(t, redemptions, 1)
}
