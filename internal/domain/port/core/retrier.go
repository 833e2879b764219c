package core

import "context"

// Retrier re-runs idempotent read operations that failed with a transient store error.
// It must never wrap operations that mutate state.
type Retrier interface {
	Do(ctx context.Context, operation func(ctx context.Context) error) error
}
