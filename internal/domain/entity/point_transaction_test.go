package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Earn entries are positive", func(t *testing.T) {
		tx, err := NewEarnTransaction("user-1", 200, "Simulated purchase", mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, tx.ID)
		assert.Equal(t, TypeEarn, tx.Type)
		assert.Equal(t, int64(200), tx.Amount)
		assert.True(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Redeem entries are negative", func(t *testing.T) {
		tx, err := NewRedeemTransaction("user-1", 80, " Coffee ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeRedeem, tx.Type)
		assert.Equal(t, int64(-80), tx.Amount)
		assert.Equal(t, int64(80), tx.AbsAmount())
		assert.Equal(t, "Coffee", tx.Description)
		assert.True(t, tx.IsDebit())
	})

	t.Run("IDs are unique", func(t *testing.T) {
		a, err := NewEarnTransaction("user-1", 1, "x", mockTime)
		require.NoError(t, err)
		b, err := NewEarnTransaction("user-1", 1, "x", mockTime)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("Invalid input", func(t *testing.T) {
		testCases := []struct {
			name   string
			userID string
			amount int64
			desc   string
			want   error
		}{
			{"empty user", "", 10, "x", errs.ErrInvalidUserID},
			{"zero amount", "u", 0, "x", errs.ErrInvalidAmount},
			{"negative amount", "u", -10, "x", errs.ErrInvalidAmount},
			{"blank description", "u", 10, "  ", errs.ErrInvalidDescription},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				tx, err := NewRedeemTransaction(tc.userID, tc.amount, tc.desc, mockTime)
				assert.ErrorIs(t, err, tc.want)
				assert.Nil(t, tx)
			})
		}
	})

	t.Run("Idempotency key is trimmed", func(t *testing.T) {
		tx, err := NewEarnTransaction("user-1", 10, "x", mockTime)
		require.NoError(t, err)

		tx.WithIdempotencyKey("  order-1 ")

		assert.Equal(t, "order-1", tx.IdempotencyKey)
	})
}

func TestSumAmounts(t *testing.T) {
	entries := []*PointTransaction{
		{Type: TypeEarn, Amount: 500},
		{Type: TypeRedeem, Amount: -120},
		{Type: TypeEarn, Amount: 20},
	}

	assert.Equal(t, int64(400), SumAmounts(entries))
	assert.Equal(t, int64(0), SumAmounts(nil))
}

func TestIsValidTransactionType(t *testing.T) {
	assert.True(t, IsValidTransactionType("earn"))
	assert.True(t, IsValidTransactionType("redeem"))
	assert.False(t, IsValidTransactionType("refund"))
	assert.False(t, IsValidTransactionType(""))
}
