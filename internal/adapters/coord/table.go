package coord

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// lockTable is the in-memory slot state. Slots are keyed by "plugin/hook".
// Waiters are woken on release and race for the slot again; fairness is not
// guaranteed and not required.
type lockTable struct {
	mu      sync.Mutex
	held    map[string]string          // key -> lease
	waiters map[string][]chan struct{} // key -> release notifications
	leaseNo atomic.Uint64
}

func newLockTable() *lockTable {
	return &lockTable{
		held:    make(map[string]string),
		waiters: make(map[string][]chan struct{}),
	}
}

func slotKey(plugin, hook string) string {
	return plugin + "/" + hook
}

// acquire blocks until the slot is granted or ctx is done, returning the
// lease token.
func (t *lockTable) acquire(ctx context.Context, plugin, hook string) (string, error) {
	key := slotKey(plugin, hook)
	for {
		t.mu.Lock()
		if _, taken := t.held[key]; !taken {
			lease := fmt.Sprintf("%s#%d", key, t.leaseNo.Add(1))
			t.held[key] = lease
			t.mu.Unlock()
			return lease, nil
		}
		ch := make(chan struct{})
		t.waiters[key] = append(t.waiters[key], ch)
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ch:
		}
	}
}

// release frees the slot if the lease still owns it and wakes all waiters.
func (t *lockTable) release(plugin, hook, lease string) bool {
	key := slotKey(plugin, hook)
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.held[key] != lease {
		return false
	}
	delete(t.held, key)
	for _, ch := range t.waiters[key] {
		close(ch)
	}
	delete(t.waiters, key)
	return true
}

// isHeld reports whether the slot is currently granted.
func (t *lockTable) isHeld(plugin, hook string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, taken := t.held[slotKey(plugin, hook)]
	return taken
}

// wait blocks until the slot is free, up to timeout. Returns false on
// timeout.
func (t *lockTable) wait(ctx context.Context, plugin, hook string, timeout time.Duration) bool {
	key := slotKey(plugin, hook)
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		t.mu.Lock()
		if _, taken := t.held[key]; !taken {
			t.mu.Unlock()
			return true
		}
		ch := make(chan struct{})
		t.waiters[key] = append(t.waiters[key], ch)
		t.mu.Unlock()

		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-ch:
		}
	}
}

// heldCount returns the number of granted slots.
func (t *lockTable) heldCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.held)
}
