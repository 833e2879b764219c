package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	fixedTime := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid profile creation", func(t *testing.T) {
		p, err := NewProfile("user-1", "Anna@Example.com", "Anna", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "user-1", p.ID)
		assert.Equal(t, "anna@example.com", p.Email)
		assert.Equal(t, "Anna", p.Name)
		assert.Equal(t, int64(0), p.Points())
		assert.False(t, p.IsAdmin)
		assert.Equal(t, fixedTime, p.CreatedAt)
	})

	t.Run("Name defaults to the email local part", func(t *testing.T) {
		p, err := NewProfile("user-1", "anna.rossi@example.com", "  ", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "anna.rossi", p.Name)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		p, err := NewProfile("", "anna@example.com", "Anna", mockTime)

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, p)
	})

	t.Run("Invalid email should return error", func(t *testing.T) {
		p, err := NewProfile("user-1", "anna", "Anna", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
		assert.Nil(t, p)
	})
}

func TestProfileBalance(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(updated).Maybe()

	t.Run("CanRedeem", func(t *testing.T) {
		p := RestoreProfile("u", "u@example.com", "u", 100, false, created, created)

		assert.True(t, p.CanRedeem(100))
		assert.True(t, p.CanRedeem(1))
		assert.False(t, p.CanRedeem(101))
		assert.False(t, p.CanRedeem(0))
		assert.False(t, p.CanRedeem(-5))
	})

	t.Run("SetPoints", func(t *testing.T) {
		p := RestoreProfile("u", "u@example.com", "u", 30, true, created, created)

		p.SetPoints(75, mockTime)

		assert.Equal(t, int64(75), p.Points())
		assert.True(t, p.IsAdmin)
		assert.Equal(t, updated, p.UpdatedAt)
	})
}
