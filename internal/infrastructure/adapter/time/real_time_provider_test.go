package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

func TestRealTimeProvider_NowIsUTC(t *testing.T) {
	p := NewRealTimeProvider()

	assert.Equal(t, time.UTC, p.Now().Location())
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p := NewRealTimeProvider()

	ctx, cancel := p.WithTimeout(context.Background(), 10*core.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, time.Second)
}
