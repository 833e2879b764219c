package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

type fixedStats struct{ stats sql.DBStats }

func (f fixedStats) Stats() sql.DBStats { return f.stats }

func TestConnectionPoolMonitor(t *testing.T) {
	t.Run("should cache the latest pool stats", func(t *testing.T) {
		source := fixedStats{stats: sql.DBStats{MaxOpenConnections: 10, OpenConnections: 4, InUse: 3, Idle: 1}}
		m := NewConnectionPoolMonitor(source, core.NewMockLogger(t))

		assert.NoError(t, m.Start(time.Hour))
		defer m.Stop()

		metrics := m.GetMetrics()
		assert.Equal(t, 4, metrics.OpenConnections)
		assert.Equal(t, 3, metrics.InUse)
		assert.Equal(t, 10, metrics.MaxOpenConnections)
	})

	t.Run("should warn when the pool is nearly exhausted", func(t *testing.T) {
		source := fixedStats{stats: sql.DBStats{MaxOpenConnections: 10, InUse: 9}}
		logger := core.NewMockLogger(t)
		logger.EXPECT().Warn("Database connection pool nearly exhausted", mock.Anything).Once()
		m := NewConnectionPoolMonitor(source, logger)

		assert.NoError(t, m.Start(time.Hour))
		m.Stop()
		m.Stop()
	})
}
