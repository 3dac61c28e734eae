package ports

import (
	"context"
	"time"
)

// SlotHandle is a held slot. Release is idempotent and must be called on
// every exit path.
type SlotHandle interface {
	Release()
}

// Locker grants advisory mutual exclusion per (plugin, hook) pair across
// concurrent invocations of the program. When a coordinator is reachable the
// scope is machine-wide; otherwise it degrades to lockfile scope. Best
// effort: a lost race costs a redundant run or a wait, never corruption.
//
//go:generate go run go.uber.org/mock/mockgen -source=locker.go -destination=mocks/mock_locker.go -package=mocks
type Locker interface {
	// Acquire blocks until the slot is free or ctx is done.
	Acquire(ctx context.Context, plugin, hook string) (SlotHandle, error)

	// IsHeld reports whether some invocation currently holds the slot.
	IsHeld(plugin, hook string) bool

	// Wait blocks until the slot is released, up to timeout. Used by the
	// dependency protocol to piggyback on an in-flight run instead of
	// starting a redundant one.
	Wait(ctx context.Context, plugin, hook string, timeout time.Duration) error
}
