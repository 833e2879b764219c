package points

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
)

func TestService_AddPoints(t *testing.T) {
	const userID = "user-2"

	t.Run("should credit balance and append an earn entry", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectCommit()

		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, userID).Return(profileWith(userID, 50), nil).Once()
		f.profiles.EXPECT().Credit(f.txCtx, userID, int64(200)).Return(int64(250), nil).Once()

		var recorded *entity.PointTransaction
		f.ledger.EXPECT().Create(f.txCtx, mock.Anything).
			Run(func(_ context.Context, tx *entity.PointTransaction) { recorded = tx }).
			Return(nil).Once()

		result, err := f.service.AddPoints(f.ctx, usecase.AddPointsRequest{UserID: userID, Amount: 200, Description: "Simulated purchase"})

		require.NoError(t, err)
		assert.Equal(t, int64(250), result.NewBalance)
		require.NotNil(t, recorded)
		assert.Equal(t, entity.TypeEarn, recorded.Type)
		assert.Equal(t, int64(200), recorded.Amount)
		assert.Equal(t, fixedTime, recorded.CreatedAt)
	})

	t.Run("should roll back the credit when the ledger insert fails", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectRollback()

		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, userID).Return(profileWith(userID, 50), nil).Once()
		f.profiles.EXPECT().Credit(f.txCtx, userID, int64(10)).Return(int64(60), nil).Once()
		f.ledger.EXPECT().Create(f.txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()

		result, err := f.service.AddPoints(f.ctx, usecase.AddPointsRequest{UserID: userID, Amount: 10, Description: "x"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should replay a credit made with the same idempotency key", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectRollback()

		original := &entity.PointTransaction{ID: "tx-earn", UserID: userID, Type: entity.TypeEarn, Amount: 10}
		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, userID).Return(profileWith(userID, 60), nil).Once()
		f.ledger.EXPECT().GetByIdempotencyKey(f.txCtx, userID, "purchase-17").Return(original, nil).Once()

		result, err := f.service.AddPoints(f.ctx, usecase.AddPointsRequest{UserID: userID, Amount: 10, Description: "x", IdempotencyKey: "purchase-17"})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, "tx-earn", result.TransactionID)
		assert.Equal(t, int64(60), result.NewBalance)
	})

	t.Run("should reject a non-positive amount", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddPoints(f.ctx, usecase.AddPointsRequest{UserID: userID, Amount: 0, Description: "x"})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("should fail for an unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectRollback()

		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, "ghost").Return(nil, errs.ErrProfileNotFound).Once()

		_, err := f.service.AddPoints(f.ctx, usecase.AddPointsRequest{UserID: "ghost", Amount: 5, Description: "x"})

		assert.True(t, errs.IsProfileNotFoundError(err))
	})
}

func TestService_CheckLedger(t *testing.T) {
	t.Run("should report a consistent ledger", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectRollback()

		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, "u").Return(profileWith("u", 150), nil).Once()
		f.ledger.EXPECT().SumByUser(f.txCtx, "u").Return(int64(150), int64(3), nil).Once()

		check, err := f.service.CheckLedger(f.ctx, "u")

		require.NoError(t, err)
		assert.True(t, check.Consistent())
		assert.Equal(t, int64(3), check.EntryCount)
	})

	t.Run("should flag a drifted balance", func(t *testing.T) {
		f := newFixture(t)
		f.expectBegin()
		f.expectRollback()

		f.profiles.EXPECT().GetByIDForUpdate(f.txCtx, "u").Return(profileWith("u", 100), nil).Once()
		f.ledger.EXPECT().SumByUser(f.txCtx, "u").Return(int64(150), int64(2), nil).Once()

		check, err := f.service.CheckLedger(f.ctx, "u")

		require.NoError(t, err)
		assert.False(t, check.Consistent())
	})
}
