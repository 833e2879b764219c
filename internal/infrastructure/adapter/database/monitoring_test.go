package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

type observed struct {
	operation string
	table     string
	duration  time.Duration
	failed    bool
}

// recordingObserver keeps every observation for assertions
type recordingObserver struct {
	mu   sync.Mutex
	seen []observed
}

func (r *recordingObserver) ObserveQuery(operation, table string, duration time.Duration, failed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, observed{operation, table, duration, failed})
}

func (r *recordingObserver) all() []observed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]observed(nil), r.seen...)
}

func steppingClock(t *testing.T, elapsed time.Duration) *core.MockTimeProvider {
	start := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	clock := core.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(start).Maybe()
	clock.EXPECT().Since(start).Return(coreport.Duration(elapsed)).Maybe()
	return clock
}

func TestMetricsCollector_MeasureQuery(t *testing.T) {
	t.Run("should forward the operation to the observer", func(t *testing.T) {
		log := core.NewMockLogger(t)
		observer := &recordingObserver{}
		c := NewMetricsCollector(log, steppingClock(t, 5*time.Millisecond))
		c.SetObserver(observer)

		m, err := c.MeasureQuery(context.Background(), "ping", func(context.Context) (int64, error) {
			return 0, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 5*time.Millisecond, m.Duration)
		assert.Equal(t, []observed{{operation: "ping", duration: 5 * time.Millisecond}}, observer.all())
	})

	t.Run("should report failures and log slow operations", func(t *testing.T) {
		log := core.NewMockLogger(t)
		log.EXPECT().Warn("Slow database operation detected", mock.MatchedBy(func(f map[string]any) bool {
			return f["operation"] == "ping" && f["failed"] == true
		})).Once()
		observer := &recordingObserver{}
		c := NewMetricsCollector(log, steppingClock(t, time.Second))
		c.SetObserver(observer)

		_, err := c.MeasureQuery(context.Background(), "ping", func(context.Context) (int64, error) {
			return 0, errors.New("connection reset")
		})

		assert.EqualError(t, err, "connection reset")
		seen := observer.all()
		require.Len(t, seen, 1)
		assert.True(t, seen[0].failed)
	})

	t.Run("should stop forwarding once the observer is detached", func(t *testing.T) {
		observer := &recordingObserver{}
		c := NewMetricsCollector(core.NewMockLogger(t), steppingClock(t, time.Millisecond))
		c.SetObserver(observer)
		c.SetObserver(nil)

		_, err := c.MeasureQuery(context.Background(), "ping", func(context.Context) (int64, error) {
			return 0, nil
		})

		require.NoError(t, err)
		assert.Empty(t, observer.all())
	})
}

func TestMetricsCollector_Record(t *testing.T) {
	observer := &recordingObserver{}
	c := NewMetricsCollector(core.NewMockLogger(t), nil)
	c.SetObserver(observer)

	c.Record("select", "profiles", time.Millisecond, gorm.ErrRecordNotFound)
	c.Record("update", "profiles", time.Millisecond, errors.New("deadlock detected"))

	assert.Equal(t, []observed{
		{operation: "select", table: "profiles", duration: time.Millisecond},
		{operation: "update", table: "profiles", duration: time.Millisecond, failed: true},
	}, observer.all())
}
