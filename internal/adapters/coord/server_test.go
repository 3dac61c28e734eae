package coord_test

import (
	"context"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/coord"
	"go.trai.ch/gate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// startServer runs a coordinator on a throwaway socket and returns a client
// once it answers pings.
func startServer(t *testing.T, idle time.Duration) (*coord.Client, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	socketPath := filepath.Join(t.TempDir(), "coord.sock")
	lifecycle := coord.NewLifecycle(idle)
	server := coord.NewServerAt(socketPath, lifecycle, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = server.Serve(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	deadline := time.Now().Add(5 * time.Second)
	for {
		client, err := coord.Dial(socketPath)
		if err == nil {
			return client, socketPath
		}
		if time.Now().After(deadline) {
			t.Fatalf("coordinator did not come up: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestServer_AcquireRelease(t *testing.T) {
	client, _ := startServer(t, time.Minute)

	handle, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	require.True(t, client.IsHeld("biome", "lint"))
	require.False(t, client.IsHeld("biome", "format"))

	handle.Release()
	require.False(t, client.IsHeld("biome", "lint"))

	handle.Release()
}

func TestServer_AcquireBlocksUntilReleased(t *testing.T) {
	client, _ := startServer(t, time.Minute)

	first, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		second, err := client.Acquire(context.Background(), "biome", "lint")
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

func TestServer_AcquireAbortsOnContext(t *testing.T) {
	client, _ := startServer(t, time.Minute)

	first, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer first.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = client.Acquire(ctx, "biome", "lint")
	require.Error(t, err)
}

func TestServer_DisconnectReleasesLease(t *testing.T) {
	client, socketPath := startServer(t, time.Minute)

	// Acquire over a raw connection, then drop it without releasing.
	conn, err := net.Dial("unix", socketPath)
	require.NoError(t, err)
	require.NoError(t, json.NewEncoder(conn).Encode(coord.Request{Op: coord.OpAcquire, Plugin: "biome", Hook: "lint"}))
	var resp coord.Response
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	require.True(t, resp.OK)
	require.True(t, client.IsHeld("biome", "lint"))

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return !client.IsHeld("biome", "lint")
	}, 2*time.Second, 20*time.Millisecond)
}

func TestServer_WaitReturnsWhenReleased(t *testing.T) {
	client, _ := startServer(t, time.Minute)

	handle, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		handle.Release()
	}()

	require.NoError(t, client.Wait(context.Background(), "biome", "lint", 5*time.Second))
}

func TestServer_WaitTimesOut(t *testing.T) {
	client, _ := startServer(t, time.Minute)

	handle, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer handle.Release()

	err = client.Wait(context.Background(), "biome", "lint", 150*time.Millisecond)
	require.Error(t, err)
}

func TestServer_StatusReportsHeldLocks(t *testing.T) {
	client, socketPath := startServer(t, time.Minute)

	handle, err := client.Acquire(context.Background(), "biome", "lint")
	require.NoError(t, err)
	defer handle.Release()

	conn, err := net.Dial("unix", socketPath)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, json.NewEncoder(conn).Encode(coord.Request{Op: coord.OpStatus}))
	var resp coord.Response
	require.NoError(t, json.NewDecoder(conn).Decode(&resp))
	require.True(t, resp.OK)
	require.NotZero(t, resp.PID)
	require.Equal(t, 1, resp.LocksHeld)
}

func TestServer_IdleShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	socketPath := filepath.Join(t.TempDir(), "coord.sock")
	server := coord.NewServerAt(socketPath, coord.NewLifecycle(200*time.Millisecond), logger)

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(context.Background())
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("coordinator did not shut down after going idle")
	}

	// Socket and pid file are cleaned up on exit.
	_, err := coord.Dial(socketPath)
	require.Error(t, err)
}

func TestDial_FailsWithoutServer(t *testing.T) {
	_, err := coord.Dial(filepath.Join(t.TempDir(), "absent.sock"))
	require.Error(t, err)
}
