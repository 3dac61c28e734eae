package shell_test

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/shell"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return shell.NewRunner(mockLogger)
}

func TestRunner_Run_Success(t *testing.T) {
	runner := newRunner(t)

	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory: t.TempDir(),
		Command:   "echo hello; echo world",
		Label:     "test-success",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, 0, result.ExitCode)
	require.Equal(t, "hello\nworld\n", result.Output)
	require.False(t, result.IdleTimedOut)
	require.False(t, result.TimedOut)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	runner := newRunner(t)

	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory: t.TempDir(),
		Command:   "echo broken >&2; exit 3",
		Label:     "test-exit",
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.Equal(t, 3, result.ExitCode)
	require.Contains(t, result.Output, "broken")
	require.NotEmpty(t, result.OutputFile, "failed runs keep their output around")
}

func TestRunner_Run_EnvAndWorkingDir(t *testing.T) {
	runner := newRunner(t)
	dir := t.TempDir()

	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory: dir,
		Command:   "echo $GATE_TEST_VALUE; pwd",
		Env:       []string{"GATE_TEST_VALUE=forty-two"},
		Label:     "test-env",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "forty-two", lines[0])
}

func TestRunner_Run_IdleTimeoutKillsSilentCommand(t *testing.T) {
	runner := newRunner(t)

	start := time.Now()
	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory:   t.TempDir(),
		Command:     "sleep 30",
		IdleTimeout: 200 * time.Millisecond,
		Label:       "test-idle",
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.True(t, result.IdleTimedOut)
	require.False(t, result.TimedOut)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_Run_OutputResetsIdleTimer(t *testing.T) {
	runner := newRunner(t)

	// Emits every 100ms for ~600ms. Each chunk arrives well inside the
	// 300ms idle window, so the command must finish normally.
	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory:   t.TempDir(),
		Command:     "for i in 1 2 3 4 5 6; do echo tick$i; sleep 0.1; done",
		IdleTimeout: 300 * time.Millisecond,
		Label:       "test-idle-reset",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.False(t, result.IdleTimedOut)
	require.Contains(t, result.Output, "tick6")
}

func TestRunner_Run_AbsoluteTimeoutKillsChattyCommand(t *testing.T) {
	runner := newRunner(t)

	// Continuous output keeps the idle timer happy forever. Only the
	// absolute cap stops it.
	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory:       t.TempDir(),
		Command:         "while true; do echo alive; sleep 0.05; done",
		IdleTimeout:     time.Second,
		AbsoluteTimeout: 400 * time.Millisecond,
		Label:           "test-absolute",
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.True(t, result.TimedOut)
	require.False(t, result.IdleTimedOut)
}

func TestRunner_Run_KillsProcessGroup(t *testing.T) {
	runner := newRunner(t)

	// The background child inherits the process group, so the idle kill
	// must take it down too instead of leaving it holding the pipe open.
	start := time.Now()
	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory:   t.TempDir(),
		Command:     "sleep 30 & wait",
		IdleTimeout: 200 * time.Millisecond,
		Label:       "test-group",
	})
	require.NoError(t, err)
	require.True(t, result.IdleTimedOut)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	runner := newRunner(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	result, err := runner.Run(ctx, ports.RunSpec{
		Directory: t.TempDir(),
		Command:   "sleep 30",
		Label:     "test-cancel",
	})
	require.NoError(t, err)
	require.False(t, result.Success)
	require.False(t, result.IdleTimedOut)
	require.False(t, result.TimedOut)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestRunner_Run_DebugArtifacts(t *testing.T) {
	runner := newRunner(t)

	result, err := runner.Run(context.Background(), ports.RunSpec{
		Directory: t.TempDir(),
		Command:   "echo traced",
		Debug:     true,
		Label:     "test-debug",
	})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NotEmpty(t, result.DebugFile)
	t.Cleanup(func() {
		_ = os.Remove(result.DebugFile)
		_ = os.Remove(result.OutputFile)
	})
}

func TestRunner_Run_SpawnFailure(t *testing.T) {
	runner := newRunner(t)

	_, err := runner.Run(context.Background(), ports.RunSpec{
		Directory: "/nonexistent/directory/for/sure",
		Command:   "true",
		Label:     "test-spawn",
	})
	require.Error(t, err)
}
