package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReward(t *testing.T) {
	fixedTime := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid reward", func(t *testing.T) {
		r, err := NewReward("  Caffè Espresso Gratis ", 150, mockTime)

		require.NoError(t, err)
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "Caffè Espresso Gratis", r.Name)
		assert.Equal(t, "caffe-espresso-gratis", r.Slug)
		assert.Equal(t, int64(150), r.PointsCost)
		assert.Equal(t, fixedTime, r.CreatedAt)
		assert.Equal(t, "Reward: Caffè Espresso Gratis", r.RedemptionDescription())
	})

	t.Run("Blank name", func(t *testing.T) {
		_, err := NewReward("   ", 150, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRewardName)
	})

	t.Run("Name without sluggable characters", func(t *testing.T) {
		_, err := NewReward("!!!", 150, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRewardName)
	})

	t.Run("Non-positive cost", func(t *testing.T) {
		_, err := NewReward("Mug", 0, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
