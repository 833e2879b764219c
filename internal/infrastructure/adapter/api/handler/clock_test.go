package handler_test

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
)

var fixedTime = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedTime }

func (fixedClock) Since(t time.Time) core.Duration { return core.Duration(fixedTime.Sub(t)) }

func (fixedClock) Until(t time.Time) core.Duration { return core.Duration(t.Sub(fixedTime)) }

func (fixedClock) Sleep(core.Duration) {}

func (fixedClock) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}
