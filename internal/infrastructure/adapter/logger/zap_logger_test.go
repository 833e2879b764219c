package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	l := newWithCore(obsCore, core.LogLevelWarn)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", map[string]any{"user_id": "u-1"})
	l.Error("shown", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "u-1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	obsCore, logs := observer.New(zap.DebugLevel)
	l := newWithCore(obsCore, core.LogLevelInfo)

	l.Debug("before", nil)
	l.SetLevel(core.LogLevelDebug)
	l.Debug("after", nil)

	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "after", logs.All()[0].Message)
}

func TestParseLevel(t *testing.T) {
	testCases := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}

	for in, want := range testCases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Level: "debug", Format: "json", Output: "stderr"})

	require.NoError(t, err)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
}
