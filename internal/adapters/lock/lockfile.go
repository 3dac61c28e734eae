// Package lock implements slot coordination: advisory mutual exclusion per
// (plugin, hook) pair across process invocations.
package lock

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// staleAfter is how long a lock may go without a heartbeat before any
	// process may reclaim it.
	staleAfter = 30 * time.Second

	// heartbeatEvery is the held-lock heartbeat interval.
	heartbeatEvery = 10 * time.Second

	// pollEvery is the retry interval for blocked acquires and waits.
	pollEvery = 50 * time.Millisecond
)

var _ ports.Locker = (*FileLocker)(nil)

// FileLocker implements ports.Locker with one JSON lock file per slot under
// the state directory. Scope is machine-wide in the happy path but the
// staleness reclaim makes it advisory: a lost race costs a redundant run,
// never corruption.
type FileLocker struct {
	dir string
}

// NewFileLocker creates a locker writing lock files under dir.
func NewFileLocker(dir string) *FileLocker {
	return &FileLocker{dir: dir}
}

// lockData is the lock file payload.
type lockData struct {
	PID         int       `json:"pid"`
	AcquiredAt  time.Time `json:"acquired_at"`
	HeartbeatAt time.Time `json:"heartbeat_at"`
}

func (l *FileLocker) lockPath(plugin, hook string) string {
	return filepath.Join(l.dir, sanitizeSlot(plugin)+"__"+sanitizeSlot(hook)+".lock")
}

// sanitizeSlot makes a slot name usable inside a lock file name. Path
// separators would otherwise escape the lock directory.
func sanitizeSlot(name string) string {
	name = strings.ReplaceAll(name, string(filepath.Separator), "-")
	return strings.ReplaceAll(name, "..", "-")
}

// Acquire blocks until the slot is free or ctx is done.
func (l *FileLocker) Acquire(ctx context.Context, plugin, hook string) (ports.SlotHandle, error) {
	if err := os.MkdirAll(l.dir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create lock directory")
	}

	path := l.lockPath(plugin, hook)
	for {
		handle, err := l.tryAcquire(path)
		if err == nil {
			return handle, nil
		}
		if !errors.Is(err, domain.ErrSlotHeld) {
			return nil, err
		}

		select {
		case <-ctx.Done():
			abortErr := zerr.With(zerr.Wrap(ctx.Err(), "slot acquisition aborted"), "plugin", plugin)
			return nil, zerr.With(abortErr, "hook", hook)
		case <-time.After(pollEvery):
		}
	}
}

// tryAcquire attempts a single non-blocking acquisition, reclaiming stale
// locks first.
func (l *FileLocker) tryAcquire(path string) (ports.SlotHandle, error) {
	if _, err := os.Stat(path); err == nil {
		data, ok := readLock(path)
		if !ok || isStale(data) {
			// Corrupt payload, dead owner, or missed heartbeats; reclaim.
			_ = os.Remove(path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, domain.PrivateFilePerm) //nolint:gosec // Lock path is built from sanitized slot names
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, domain.ErrSlotHeld
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to create lock file"), "path", path)
	}

	now := time.Now()
	payload, err := json.Marshal(lockData{PID: os.Getpid(), AcquiredAt: now, HeartbeatAt: now})
	if err == nil {
		_, err = f.Write(payload)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", path)
	}

	h := &fileHandle{path: path, stop: make(chan struct{})}
	go h.heartbeatLoop()
	return h, nil
}

// IsHeld reports whether a live process holds the slot.
func (l *FileLocker) IsHeld(plugin, hook string) bool {
	data, ok := readLock(l.lockPath(plugin, hook))
	return ok && !isStale(data)
}

// Wait blocks until the slot is released, up to timeout.
func (l *FileLocker) Wait(ctx context.Context, plugin, hook string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for l.IsHeld(plugin, hook) {
		if time.Now().After(deadline) {
			waitErr := zerr.With(zerr.Wrap(domain.ErrDependencyTimeout, "slot wait expired"), "plugin", plugin)
			return zerr.With(waitErr, "hook", hook)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollEvery):
		}
	}
	return nil
}

// fileHandle heartbeats the lock file while held.
type fileHandle struct {
	path string
	stop chan struct{}
	once sync.Once
}

// Release removes the lock file. Idempotent.
func (h *fileHandle) Release() {
	h.once.Do(func() {
		close(h.stop)
		_ = os.Remove(h.path)
	})
}

func (h *fileHandle) heartbeatLoop() {
	ticker := time.NewTicker(heartbeatEvery)
	defer ticker.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			data, ok := readLock(h.path)
			if !ok || data.PID != os.Getpid() {
				// The file was reclaimed out from under us; stop touching it.
				return
			}
			data.HeartbeatAt = time.Now()
			if payload, err := json.Marshal(data); err == nil {
				_ = os.WriteFile(h.path, payload, domain.PrivateFilePerm)
			}
		}
	}
}

// readLock parses a lock file. A missing or corrupt file reads as not held.
func readLock(path string) (lockData, bool) {
	raw, err := os.ReadFile(path) //nolint:gosec // Lock path is built from sanitized slot names
	if err != nil {
		return lockData{}, false
	}
	var data lockData
	if err := json.Unmarshal(raw, &data); err != nil {
		return lockData{}, false
	}
	return data, true
}

// isStale reports whether the owning process is gone or stopped
// heartbeating.
func isStale(data lockData) bool {
	if !processExists(data.PID) {
		return true
	}
	return time.Since(data.HeartbeatAt) > staleAfter
}

// processExists probes a pid with signal 0.
func processExists(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
