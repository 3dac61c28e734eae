package ports

import (
	"context"
	"time"

	"go.trai.ch/gate/internal/core/domain"
)

// RunSpec describes one supervised command execution.
type RunSpec struct {
	// Directory is the working directory for the command.
	Directory string

	// Command is run via the shell.
	Command string

	// Env holds additional environment entries in "KEY=VALUE" form, applied
	// on top of the process environment.
	Env []string

	// IdleTimeout kills the command when no output arrives for this long.
	// Zero disables the idle timer.
	IdleTimeout time.Duration

	// AbsoluteTimeout caps total wall-clock runtime. It is always enforced.
	AbsoluteTimeout time.Duration

	// Verbose streams output to the caller's terminal instead of capturing.
	Verbose bool

	// Debug forces artifact files to be written even on success.
	Debug bool

	// Label names the run in artifact file names, typically "<plugin>-<hook>".
	Label string
}

// Runner supervises hook command processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the spec and reports the outcome. A non-zero exit or a
	// timeout is reported through the result, not through the error; the
	// error is reserved for failures to spawn or supervise the process.
	Run(ctx context.Context, spec RunSpec) (domain.RunResult, error)
}
