package points

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/loyalty-service/internal/domain/error"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

func newMemService(t *testing.T, store *memStore) *Service {
	metrics := core.NewMockMetrics(t)
	metrics.EXPECT().Redemption(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().PointsEarned(mock.Anything).Maybe()
	return NewService(&memUnitOfWork{store: store}, &sequenceCodes{}, fixedClock{}, quietLogger(t), metrics, passthroughRetrier(t))
}

func assertLedgerMatchesBalance(t *testing.T, svc *Service, userID string) {
	t.Helper()
	check, err := svc.CheckLedger(context.Background(), userID)
	require.NoError(t, err)
	assert.Truef(t, check.Consistent(), "balance %d != ledger sum %d", check.Balance, check.LedgerSum)
}

func TestRedeem_ConcurrentFullBalance(t *testing.T) {
	store := newMemStore()
	store.seed("alice", 100)
	svc := newMemService(t, store)

	var (
		wg        sync.WaitGroup
		successes int
		failures  []error
		mu        sync.Mutex
		start     = make(chan struct{})
	)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.Redeem(context.Background(), usecase.RedeemRequest{UserID: "alice", Amount: 100, Description: "full balance"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else {
				failures = append(failures, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	require.Len(t, failures, 1)
	assert.True(t, errs.IsInsufficientPointsError(failures[0]))
	assert.Equal(t, int64(0), store.balance("alice"))
	assertLedgerMatchesBalance(t, svc, "alice")
}

func TestRedeem_ManyConcurrentNeverNegative(t *testing.T) {
	store := newMemStore()
	store.seed("bob", 1000)
	svc := newMemService(t, store)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.Redeem(context.Background(), usecase.RedeemRequest{
				UserID:      "bob",
				Amount:      int64(30 + i%7),
				Description: fmt.Sprintf("redeem %d", i),
			})
		}(i)
	}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddPoints(context.Background(), usecase.AddPointsRequest{UserID: "bob", Amount: 25, Description: "purchase"})
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, store.balance("bob"), int64(0))
	assertLedgerMatchesBalance(t, svc, "bob")
}

func TestRedeem_RoundTripThroughLedger(t *testing.T) {
	store := newMemStore()
	store.seed("carol", 250)
	svc := newMemService(t, store)

	result, err := svc.Redeem(context.Background(), usecase.RedeemRequest{UserID: "carol", Amount: 100, Description: "x"})
	require.NoError(t, err)

	assert.Equal(t, int64(150), store.balance("carol"))
	entries := store.ledgerFor("carol")
	require.Len(t, entries, 2)
	last := entries[len(entries)-1]
	assert.Equal(t, result.TransactionID, last.ID)
	assert.Equal(t, entity.TypeRedeem, last.Type)
	assert.Equal(t, int64(-100), last.Amount)
	assert.Equal(t, 1, store.codeCount())
}

func TestRedeem_ZeroBalanceLeavesNoTrace(t *testing.T) {
	store := newMemStore()
	store.seed("dave", 0)
	svc := newMemService(t, store)

	_, err := svc.Redeem(context.Background(), usecase.RedeemRequest{UserID: "dave", Amount: 50, Description: "coffee"})

	assert.True(t, errs.IsInsufficientPointsError(err))
	assert.Empty(t, store.ledgerFor("dave"))
	assert.Equal(t, 0, store.codeCount())
}

func TestRedeem_CodeInsertFailureKeepsBalance(t *testing.T) {
	store := newMemStore()
	store.seed("erin", 300)
	store.failCodeInsert.Store(true)
	svc := newMemService(t, store)

	result, err := svc.Redeem(context.Background(), usecase.RedeemRequest{UserID: "erin", Amount: 100, Description: "x"})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Equal(t, int64(300), store.balance("erin"))
	assert.Len(t, store.ledgerFor("erin"), 1)
	assert.Equal(t, 0, store.codeCount())
	assertLedgerMatchesBalance(t, svc, "erin")
}

func TestRedeem_IdempotentReplayUnderConcurrency(t *testing.T) {
	store := newMemStore()
	store.seed("frank", 500)
	svc := newMemService(t, store)

	var wg sync.WaitGroup
	results := make([]*usecase.RedeemResult, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Redeem(context.Background(), usecase.RedeemRequest{
				UserID: "frank", Amount: 100, Description: "x", IdempotencyKey: "order-42",
			})
			if err == nil {
				results[i] = r
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(400), store.balance("frank"))
	var first string
	for _, r := range results {
		require.NotNil(t, r)
		if first == "" {
			first = r.TransactionID
		}
		assert.Equal(t, first, r.TransactionID)
	}
	assertLedgerMatchesBalance(t, svc, "frank")
}
