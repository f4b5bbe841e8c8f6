package storage

import "context"

// CounterReader reads the advisory per-scope entry counters.
type CounterReader interface {
	// GetCounter returns the counter stored under path, or 0 when the
	// counter has never been written.
	GetCounter(ctx context.Context, path string) (int64, error)
}

// CounterWriter bumps the advisory per-scope entry counters.
type CounterWriter interface {
	// IncrementCounter adds 1 to the counter stored under path using the
	// store's atomic read-modify-write primitive, never a plain
	// read-then-write.
	IncrementCounter(ctx context.Context, path string) error
}

// CounterStore combines the reader and writer interfaces.
type CounterStore interface {
	CounterReader
	CounterWriter
}
