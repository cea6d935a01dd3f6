package application

import "context"

// EventDeduper remembers processed webhook event ids.
type EventDeduper interface {
	// TryReserve returns true if key was absent and is now reserved.
	// Returns false if the key already exists (duplicate).
	TryReserve(ctx context.Context, key string) (bool, error)
	// Release drops a reservation whose processing failed.
	Release(ctx context.Context, key string) error
}

// NoopDeduper always succeeds, so replayed events are reapplied.
type NoopDeduper struct{}

func (NoopDeduper) TryReserve(context.Context, string) (bool, error) { return true, nil }
func (NoopDeduper) Release(context.Context, string) error             { return nil }
