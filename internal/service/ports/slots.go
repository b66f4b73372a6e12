package ports

import "context"

// SlotLedger is the only legal way to consume or restore capacity on a test.
// Reserve must be atomic with respect to all concurrent callers: a plain
// read-then-write is not an acceptable implementation.
type SlotLedger interface {
	Reserve(ctx context.Context, testID string) error
	Release(ctx context.Context, testID string) error
}
