package lock_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/lock"
	"go.trai.ch/gate/internal/core/domain"
)

func TestFileLocker_AcquireRelease(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	require.True(t, locker.IsHeld("biome", "lint"))

	handle.Release()
	require.False(t, locker.IsHeld("biome", "lint"))

	// Release is idempotent.
	handle.Release()
}

func TestFileLocker_SlotNamesStayInsideLockDir(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewFileLocker(filepath.Join(dir, "locks"))

	handle, err := locker.Acquire(context.Background(), "../escape", "lint/fast")
	require.NoError(t, err)
	defer handle.Release()

	entries, err := os.ReadDir(filepath.Join(dir, "locks"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	outside, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, outside, 1, "lock file must not land outside the lock directory")
}

func TestFileLocker_SlotsAreIndependent(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer handle.Release()

	require.True(t, locker.IsHeld("biome", "lint"))
	require.False(t, locker.IsHeld("biome", "format"))
	require.False(t, locker.IsHeld("tsc", "lint"))
}

func TestFileLocker_AcquireBlocksUntilReleased(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	first, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := locker.Acquire(context.Background(), "biome", "lint")
		if err == nil {
			second.Release()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second acquire succeeded while the slot was held")
	case <-time.After(150 * time.Millisecond):
	}

	first.Release()
	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second acquire did not proceed after release")
	}
}

func TestFileLocker_AcquireAbortsOnContext(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer handle.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(ctx, "biome", "lint")
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFileLocker_ReclaimsDeadOwner(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewFileLocker(dir)

	// A lock file left behind by a process that no longer exists.
	payload, err := json.Marshal(map[string]any{
		"pid":          1 << 30,
		"acquired_at":  time.Now(),
		"heartbeat_at": time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "biome__lint.lock"), payload, domain.PrivateFilePerm))

	require.False(t, locker.IsHeld("biome", "lint"))

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	handle.Release()
}

func TestFileLocker_ReclaimsMissedHeartbeats(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewFileLocker(dir)

	// A live pid whose heartbeat is long past the staleness window.
	payload, err := json.Marshal(map[string]any{
		"pid":          os.Getpid(),
		"acquired_at":  time.Now().Add(-time.Hour),
		"heartbeat_at": time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "biome__lint.lock"), payload, domain.PrivateFilePerm))

	require.False(t, locker.IsHeld("biome", "lint"))
}

func TestFileLocker_CorruptLockReadsAsFree(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewFileLocker(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "biome__lint.lock"), []byte("{bad"), domain.PrivateFilePerm))
	require.False(t, locker.IsHeld("biome", "lint"))
}

func TestFileLocker_ReclaimsCorruptLock(t *testing.T) {
	dir := t.TempDir()
	locker := lock.NewFileLocker(dir)

	// A truncated lock file must not wedge acquisition forever.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "biome__lint.lock"), []byte("{bad"), domain.PrivateFilePerm))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	handle, err := locker.Acquire(ctx, "biome", "lint")
	require.NoError(t, err)
	require.True(t, locker.IsHeld("biome", "lint"))
	handle.Release()
}

func TestFileLocker_WaitReturnsWhenReleased(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		handle.Release()
	}()

	require.NoError(t, locker.Wait(context.Background(), "biome", "lint", 5*time.Second))
}

func TestFileLocker_WaitTimesOut(t *testing.T) {
	locker := lock.NewFileLocker(t.TempDir())

	handle, err := locker.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer handle.Release()

	err = locker.Wait(context.Background(), "biome", "lint", 150*time.Millisecond)
	require.ErrorIs(t, err, domain.ErrDependencyTimeout)
}
