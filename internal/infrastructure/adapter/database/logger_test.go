package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/mocks/port/core"
)

func TestDescribeStatement(t *testing.T) {
	testCases := []struct {
		sql  string
		want statement
	}{
		{`SELECT * FROM "profiles" WHERE id = $1 FOR UPDATE`, statement{verb: "SELECT", table: "profiles", rowLock: true}},
		{`INSERT INTO "point_transactions" ("id") VALUES ($1)`, statement{verb: "INSERT", table: "point_transactions"}},
		{`UPDATE "profiles" SET points = points - $1 WHERE id = $2 AND points >= $1`, statement{verb: "UPDATE", table: "profiles"}},
		{`DELETE FROM public.otps WHERE email = $1`, statement{verb: "DELETE", table: "otps"}},
		{`SET LOCAL lock_timeout = '3000ms'`, statement{verb: "SET"}},
		{"", statement{}},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.want, describeStatement(tc.sql))
		})
	}
}

func TestQueryLogger_Trace(t *testing.T) {
	begin := time.Now()
	sql := func() (string, int64) { return `SELECT * FROM "profiles" WHERE id = 'u' FOR UPDATE`, 1 }
	ctx := context.WithValue(context.Background(), coreport.RequestIDKey, "req-1")

	t.Run("should log lock timeouts as warnings with the request id", func(t *testing.T) {
		log := core.NewMockLogger(t)
		log.EXPECT().Warn("SQL lock wait exceeded", mock.MatchedBy(func(f map[string]any) bool {
			return f["request_id"] == "req-1" && f["table"] == "profiles" && f["row_lock"] == true
		})).Once()

		l := NewDatabaseLogger(log, nil, "info", time.Second, nil)
		l.Trace(ctx, begin, sql, &pgconn.PgError{Code: "55P03"})
	})

	t.Run("should log other failures as errors", func(t *testing.T) {
		log := core.NewMockLogger(t)
		log.EXPECT().Error("SQL error", mock.Anything).Once()

		l := NewDatabaseLogger(log, nil, "error", time.Second, nil)
		l.Trace(ctx, begin, sql, errors.New("boom"))
	})

	t.Run("should keep missing rows at debug", func(t *testing.T) {
		log := core.NewMockLogger(t)
		log.EXPECT().Debug("SQL query found no rows", mock.Anything).Once()

		l := NewDatabaseLogger(log, nil, "info", time.Second, nil)
		l.Trace(ctx, begin, sql, gorm.ErrRecordNotFound)
	})

	t.Run("should flag slow queries", func(t *testing.T) {
		log := core.NewMockLogger(t)
		log.EXPECT().Warn("Slow SQL query", mock.Anything).Once()

		l := NewDatabaseLogger(log, nil, "warn", time.Millisecond, nil)
		l.Trace(ctx, begin.Add(-time.Second), sql, nil)
	})

	t.Run("should stay quiet when silent", func(t *testing.T) {
		log := core.NewMockLogger(t)

		l := NewDatabaseLogger(log, nil, "info", time.Second, nil).LogMode(gormlogger.Silent)
		l.Trace(ctx, begin, sql, errors.New("boom"))
	})
}

func TestQueryLogger_FeedsCollector(t *testing.T) {
	sql := func() (string, int64) { return `UPDATE "profiles" SET points = points - 100 WHERE id = 'u'`, 1 }

	t.Run("should time statements even when logging is silent", func(t *testing.T) {
		observer := &recordingObserver{}
		collector := NewMetricsCollector(core.NewMockLogger(t), nil)
		collector.SetObserver(observer)

		l := NewDatabaseLogger(core.NewMockLogger(t), nil, "silent", time.Second, collector)
		l.Trace(context.Background(), time.Now(), sql, nil)

		seen := observer.all()
		require.Len(t, seen, 1)
		assert.Equal(t, "update", seen[0].operation)
		assert.Equal(t, "profiles", seen[0].table)
		assert.False(t, seen[0].failed)
	})

	t.Run("should skip statements it cannot classify", func(t *testing.T) {
		observer := &recordingObserver{}
		collector := NewMetricsCollector(core.NewMockLogger(t), nil)
		collector.SetObserver(observer)

		l := NewDatabaseLogger(core.NewMockLogger(t), nil, "silent", time.Second, collector)
		l.Trace(context.Background(), time.Now(), func() (string, int64) { return "CREATE TABLE t (id int)", 0 }, nil)

		assert.Empty(t, observer.all())
	})
}
