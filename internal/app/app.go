// Package app implements the application layer for gate.
package app

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App maps hook invocations onto process exit codes.
type App struct {
	orch   *orchestrator.Orchestrator
	logger ports.Logger
}

// New creates a new App instance.
func New(orch *orchestrator.Orchestrator, logger ports.Logger) *App {
	return &App{orch: orch, logger: logger}
}

// RunHook executes one hook and renders the report to out. The exit code
// follows the engine contract: 0 all passed or no-op, 2 at least one
// directory failed, 1 configuration or dependency error (returned alongside
// the error itself).
func (a *App) RunHook(ctx context.Context, plugin, hook string, opts orchestrator.Options, out io.Writer) (int, error) {
	if disabled() {
		return domain.ExitOK, nil
	}
	fillSession(&opts)

	report, err := a.orch.RunHook(ctx, plugin, hook, opts)
	if err != nil {
		return domain.ExitConfigError, err
	}

	orchestrator.RenderReport(out, report)
	if report.Failed() {
		return domain.ExitValidationFailed, nil
	}
	return domain.ExitOK, nil
}

// CheckFile runs the per-file variant and prints the decision payload as
// JSON. The exit code is always 0; even a blocking outcome is a decision for
// the caller, not a process failure. Configuration errors degrade to a
// continue decision so a misconfigured hook never wedges edits.
func (a *App) CheckFile(ctx context.Context, plugin, hook, file string, opts orchestrator.Options, out io.Writer) (int, error) {
	if disabled() {
		return domain.ExitOK, printDecision(out, domain.Decision{Decision: domain.DecisionContinue})
	}
	fillSession(&opts)

	decision, err := a.orch.CheckFile(ctx, plugin, hook, file, opts)
	if err != nil {
		a.logger.Warn("check failed, continuing: " + err.Error())
		decision = domain.Decision{Decision: domain.DecisionContinue, Reason: err.Error()}
	}
	return domain.ExitOK, printDecision(out, decision)
}

func printDecision(out io.Writer, decision domain.Decision) error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(decision); err != nil {
		return zerr.Wrap(err, "failed to encode decision")
	}
	return nil
}

// disabled reports whether the engine is short-circuited off.
func disabled() bool {
	return os.Getenv(domain.EnvDisable) != ""
}

// fillSession defaults the session from the environment.
func fillSession(opts *orchestrator.Options) {
	if opts.SessionID == "" {
		opts.SessionID = os.Getenv(domain.EnvSessionID)
	}
}
