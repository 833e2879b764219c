package entity

import (
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRewardCode(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	redeem := &PointTransaction{ID: "tx-1", UserID: "user-1", Type: TypeRedeem, Amount: -100, CreatedAt: createdAt}

	t.Run("Pending code for a redeem entry", func(t *testing.T) {
		rewardID := "reward-1"
		code, err := NewRewardCode(redeem, "K7QX2-MPA9D", &rewardID)

		require.NoError(t, err)
		assert.Equal(t, "tx-1", code.TransactionID)
		assert.Equal(t, "user-1", code.UserID)
		assert.Equal(t, "K7QX2-MPA9D", code.Code)
		assert.Equal(t, &rewardID, code.RewardID)
		assert.Equal(t, createdAt, code.CreatedAt)
		assert.Equal(t, StatusPending, code.Status())
		assert.False(t, code.IsFulfilled())
	})

	t.Run("Earn entries cannot carry a code", func(t *testing.T) {
		earn := &PointTransaction{ID: "tx-2", UserID: "user-1", Type: TypeEarn, Amount: 100}

		_, err := NewRewardCode(earn, "K7QX2-MPA9D", nil)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Empty code is rejected", func(t *testing.T) {
		_, err := NewRewardCode(redeem, " ", nil)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestRewardCodeMarkFulfilled(t *testing.T) {
	first := time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	code := &RewardCode{TransactionID: "tx-1", Code: "K7QX2-MPA9D"}

	require.NoError(t, code.MarkFulfilled(first))
	assert.Equal(t, StatusFulfilled, code.Status())
	assert.Equal(t, first, *code.FulfilledAt)

	err := code.MarkFulfilled(second)

	assert.ErrorIs(t, err, errs.ErrAlreadyFulfilled)
	var typed *errs.AlreadyFulfilledError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, "tx-1", typed.TransactionID)
	assert.Equal(t, first, *code.FulfilledAt)
}
