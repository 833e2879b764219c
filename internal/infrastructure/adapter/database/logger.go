package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/infrastructure/adapter/repository"
)

// QueryLogger routes gorm statements through the application logger and tags
// them with the request that issued them
type QueryLogger struct {
	log           coreport.Logger
	clock         coreport.TimeProvider
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	classifier    *repository.ErrorClassifier
	collector     *MetricsCollector
}

// NewDatabaseLogger creates a gorm logger writing through the core logger.
// Queries slower than slowThreshold are logged as warnings. Every statement
// is also timed into collector when one is given, whatever the log level.
func NewDatabaseLogger(log coreport.Logger, clock coreport.TimeProvider, level string, slowThreshold time.Duration, collector *MetricsCollector) gormlogger.Interface {
	return &QueryLogger{
		log:           log,
		clock:         clock,
		level:         parseGormLevel(level),
		slowThreshold: slowThreshold,
		classifier:    repository.NewErrorClassifier(),
		collector:     collector,
	}
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn", "warning":
		return gormlogger.Warn
	default:
		return gormlogger.Info
	}
}

// LogMode implements gormlogger.Interface
func (l *QueryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *QueryLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(msg, l.baseFields(ctx, data))
	}
}

func (l *QueryLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(msg, l.baseFields(ctx, data))
	}
}

func (l *QueryLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(msg, l.baseFields(ctx, data))
	}
}

func (l *QueryLogger) baseFields(ctx context.Context, data []interface{}) map[string]any {
	fields := map[string]any{"source": "database"}
	if len(data) > 0 {
		fields["data"] = data
	}
	if id := requestIDFrom(ctx); id != "" {
		fields["request_id"] = id
	}
	return fields
}

// Trace logs one executed statement. Lock timeouts are expected under
// contention on a single profile and are logged as warnings, not errors.
func (l *QueryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent && l.collector == nil {
		return
	}

	elapsed := l.elapsedSince(begin)
	sql, rows := fc()
	stmt := describeStatement(sql)

	if l.collector != nil && stmt.verb != "" {
		l.collector.Record(strings.ToLower(stmt.verb), stmt.table, elapsed, err)
	}
	if l.level <= gormlogger.Silent {
		return
	}

	fields := l.baseFields(ctx, nil)
	fields["elapsed_ms"] = float64(elapsed.Microseconds()) / 1000
	fields["rows"] = rows
	fields["sql"] = sql

	if stmt.verb != "" {
		fields["type"] = stmt.verb
	}
	if stmt.table != "" {
		fields["table"] = stmt.table
	}
	if stmt.rowLock {
		fields["row_lock"] = true
	}

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level >= gormlogger.Info {
			l.log.Debug("SQL query found no rows", fields)
		}
	case err != nil && l.classifier.IsLockError(err):
		fields["error"] = err.Error()
		if l.level >= gormlogger.Warn {
			l.log.Warn("SQL lock wait exceeded", fields)
		}
	case err != nil:
		fields["error"] = err.Error()
		if l.level >= gormlogger.Error {
			l.log.Error("SQL error", fields)
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		fields["threshold_ms"] = l.slowThreshold.Milliseconds()
		if l.level >= gormlogger.Warn {
			l.log.Warn("Slow SQL query", fields)
		}
	case l.level >= gormlogger.Info:
		l.log.Debug("SQL query", fields)
	}
}

func (l *QueryLogger) elapsedSince(begin time.Time) time.Duration {
	if l.clock == nil {
		return time.Since(begin)
	}
	return l.clock.Since(begin).Std()
}

type statement struct {
	verb    string
	table   string
	rowLock bool
}

// describeStatement extracts the verb, the first table and whether the
// statement takes row locks. It is a heuristic for log fields only.
func describeStatement(sql string) statement {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return statement{}
	}

	var st statement
	verb := strings.ToUpper(fields[0])
	switch verb {
	case "SELECT", "INSERT", "UPDATE", "DELETE", "SET":
		st.verb = verb
	}

	keyword := ""
	switch verb {
	case "SELECT", "DELETE":
		keyword = "FROM"
	case "INSERT":
		keyword = "INTO"
	case "UPDATE":
		if len(fields) > 1 {
			st.table = cleanIdentifier(fields[1])
		}
	}

	for i, f := range fields {
		upper := strings.ToUpper(f)
		if keyword != "" && st.table == "" && upper == keyword && i+1 < len(fields) {
			st.table = cleanIdentifier(fields[i+1])
		}
		if upper == "UPDATE" && i > 0 && strings.ToUpper(fields[i-1]) == "FOR" {
			st.rowLock = true
		}
	}
	return st
}

func cleanIdentifier(s string) string {
	s = strings.Trim(s, `"(),;`)
	if i := strings.LastIndex(s, "."); i >= 0 {
		s = s[i+1:]
	}
	return strings.ToLower(strings.Trim(s, `"`))
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(coreport.RequestIDKey).(string)
	return id
}
