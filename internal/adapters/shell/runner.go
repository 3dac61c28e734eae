// Package shell provides the supervised process runner for hook commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultAbsoluteTimeout caps total runtime when the spec does not override
// it. It exists to stop commands that emit slow-but-continuous output and
// would otherwise defeat the idle timer.
const DefaultAbsoluteTimeout = 300 * time.Second

// Kill reasons recorded by the supervisor.
const (
	killIdle     = "idle-timeout"
	killAbsolute = "absolute-timeout"
	killCanceled = "canceled"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using bash -c under two independent timers.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the spec. The returned error covers supervision failures
// only; command failures and timeouts land in the result.
func (r *Runner) Run(ctx context.Context, spec ports.RunSpec) (domain.RunResult, error) {
	absolute := spec.AbsoluteTimeout
	if absolute <= 0 {
		absolute = DefaultAbsoluteTimeout
	}

	cmd := exec.Command("bash", "-c", spec.Command) //nolint:gosec // Hook commands come from installed plugin declarations
	cmd.Dir = spec.Directory
	cmd.Env = append(os.Environ(), spec.Env...)
	// Own process group so a kill reaches the command's children too.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var buf bytes.Buffer
	sup := &supervisor{}
	var sink io.Writer = &buf
	if spec.Verbose {
		// Verbose runs stream live and are not captured.
		sink = os.Stderr
	}
	out := &activityWriter{sink: sink, touch: sup.touch}
	cmd.Stdout = out
	cmd.Stderr = out

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return domain.RunResult{}, zerr.With(zerr.Wrap(err, "failed to start hook command"), "dir", spec.Directory)
	}
	sup.arm(cmd, spec.IdleTimeout, absolute)

	ctxDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			sup.kill(killCanceled)
		case <-ctxDone:
		}
	}()

	waitErr := cmd.Wait()
	close(ctxDone)
	sup.disarm()

	reason := sup.reason()
	result := domain.RunResult{
		Success:      waitErr == nil && reason == "",
		IdleTimedOut: reason == killIdle,
		TimedOut:     reason == killAbsolute,
		Output:       buf.String(),
		Duration:     time.Since(start),
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	if !result.Success || spec.Debug {
		r.writeArtifacts(&result, spec, start, reason)
	}
	return result, nil
}

// supervisor owns the two timers and the one-shot kill guard. Exactly one
// reason may finalize a run; later kills are no-ops.
type supervisor struct {
	mu       sync.Mutex
	cmd      *exec.Cmd
	idle     *time.Timer
	idleSpan time.Duration
	absolute *time.Timer

	killOnce   sync.Once
	killReason string
}

// arm starts the timers once the process is running.
func (s *supervisor) arm(cmd *exec.Cmd, idle, absolute time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cmd = cmd
	s.absolute = time.AfterFunc(absolute, func() { s.kill(killAbsolute) })
	if idle > 0 {
		s.idleSpan = idle
		s.idle = time.AfterFunc(idle, func() { s.kill(killIdle) })
	}
}

// touch resets the idle timer. Called on every output chunk.
func (s *supervisor) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idle != nil {
		s.idle.Reset(s.idleSpan)
	}
}

// disarm stops both timers after Wait returns.
func (s *supervisor) disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.idle != nil {
		s.idle.Stop()
	}
	if s.absolute != nil {
		s.absolute.Stop()
	}
}

// kill force-kills the process group. There is no cooperative signal; hooks
// are expected to be safe to interrupt.
func (s *supervisor) kill(reason string) {
	s.killOnce.Do(func() {
		s.mu.Lock()
		s.killReason = reason
		cmd := s.cmd
		s.mu.Unlock()
		if cmd != nil && cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		}
	})
}

func (s *supervisor) reason() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.killReason
}

// activityWriter forwards output and notes process liveness.
type activityWriter struct {
	mu    sync.Mutex
	sink  io.Writer
	touch func()
}

func (w *activityWriter) Write(p []byte) (int, error) {
	w.touch()
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.sink.Write(p)
}
