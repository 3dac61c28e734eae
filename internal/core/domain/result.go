package domain

import "time"

// RunResult is the outcome of one supervised command execution. It is folded
// into a Report and discarded; OutputFile and DebugFile are durable artifacts
// left on disk for inspection.
type RunResult struct {
	Success      bool
	IdleTimedOut bool
	TimedOut     bool
	ExitCode     int
	Output       string
	OutputFile   string
	DebugFile    string
	Duration     time.Duration
}

// DirectoryFailure pairs a failing target directory with its run result.
type DirectoryFailure struct {
	Directory string
	Result    RunResult
}

// Report aggregates one orchestrator invocation.
type Report struct {
	Plugin   string
	Hook     string
	Executed int
	Skipped  int
	Failures []DirectoryFailure
}

// Failed reports whether any directory failed validation.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Decision is the machine-consumable payload of a per-file check.
type Decision struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

const (
	// DecisionBlock signals the caller to block the triggering edit.
	DecisionBlock = "block"
	// DecisionContinue signals the caller to proceed.
	DecisionContinue = "continue"
)
