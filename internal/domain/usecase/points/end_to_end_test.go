package points

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/admin"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

func newProfileService(t *testing.T, store *memStore) *profile.Service {
	profiles, ledger := store.committed()
	return profile.NewService(profiles, ledger, fixedClock{}, quietLogger(t), passthroughRetrier(t))
}

func newAdminService(t *testing.T, store *memStore, points usecase.PointsUseCase) *admin.Service {
	profiles, _ := store.committed()
	metrics := core.NewMockMetrics(t)
	metrics.EXPECT().PointsEarned(mock.Anything).Maybe()
	return admin.NewService(
		admin.NewGate(profiles, quietLogger(t)),
		profiles,
		nil,
		nil,
		points,
		fixedClock{},
		quietLogger(t),
		metrics,
		passthroughRetrier(t),
	)
}

func TestEndToEnd_RedeemShowsOnProfile(t *testing.T) {
	store := newMemStore()
	store.seed("alice", 500)
	svc := newMemService(t, store)
	profiles := newProfileService(t, store)
	caller := entity.Principal{UserID: "alice", Email: "alice@example.com"}

	before, err := profiles.GetUserProfile(context.Background(), caller)
	require.NoError(t, err)
	require.Equal(t, int64(500), before.Profile.Points())

	result, err := svc.Redeem(context.Background(), usecase.RedeemRequest{UserID: "alice", Amount: 100, Description: "Coffee"})
	require.NoError(t, err)

	after, err := profiles.GetUserProfile(context.Background(), caller)
	require.NoError(t, err)

	assert.Equal(t, before.Profile.Points()-100, after.Profile.Points())
	assert.Equal(t, result.NewBalance, after.Profile.Points())
	require.NotEmpty(t, after.RecentActivity)
	latest := after.RecentActivity[0]
	assert.Equal(t, result.TransactionID, latest.ID)
	assert.Equal(t, entity.TypeRedeem, latest.Type)
	assert.Equal(t, int64(-100), latest.Amount)
	assertLedgerMatchesBalance(t, svc, "alice")
}

func TestEndToEnd_AdminCreditShowsOnProfile(t *testing.T) {
	store := newMemStore()
	store.seedAdmin("root")
	store.seed("bob", 0)
	svc := newMemService(t, store)
	profiles := newProfileService(t, store)
	admins := newAdminService(t, store, svc)

	rootCaller := entity.Principal{UserID: "root", Email: "root@example.com"}
	bobCaller := entity.Principal{UserID: "bob", Email: "bob@example.com"}

	before, err := profiles.GetUserProfile(context.Background(), bobCaller)
	require.NoError(t, err)

	result, err := admins.AddPointsByEmail(context.Background(), rootCaller, "Bob@Example.com", 200, "Welcome bonus")
	require.NoError(t, err)

	after, err := profiles.GetUserProfile(context.Background(), bobCaller)
	require.NoError(t, err)

	assert.Equal(t, before.Profile.Points()+200, after.Profile.Points())
	assert.Equal(t, result.NewBalance, after.Profile.Points())

	var earns []*entity.PointTransaction
	for _, e := range after.RecentActivity {
		if e.Type == entity.TypeEarn {
			earns = append(earns, e)
		}
	}
	require.Len(t, earns, 1)
	assert.Equal(t, int64(200), earns[0].Amount)
	assert.Equal(t, result.TransactionID, earns[0].ID)
	assert.Len(t, store.ledgerFor("bob"), 1)
	assert.Equal(t, int64(0), store.balance("root"))
}
