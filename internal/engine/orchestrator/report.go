package orchestrator

import (
	"fmt"
	"io"

	"go.trai.ch/gate/internal/core/domain"
)

// RenderReport writes the human-readable summary of one invocation. Every
// failure names its directory, how it failed, the exact re-run command, and
// where the captured output went.
func RenderReport(w io.Writer, report *domain.Report) {
	if !report.Failed() {
		if report.Executed == 0 && report.Skipped == 0 {
			fmt.Fprintf(w, "%s/%s: nothing to do\n", report.Plugin, report.Hook)
			return
		}
		fmt.Fprintf(w, "%s/%s: %d passed, %d unchanged\n",
			report.Plugin, report.Hook, report.Executed, report.Skipped)
		return
	}

	fmt.Fprintf(w, "%s/%s: %d of %d directories failed\n\n",
		report.Plugin, report.Hook, len(report.Failures), report.Executed)

	for _, f := range report.Failures {
		fmt.Fprintf(w, "  %s: %s\n", f.Directory, classify(f.Result))
		fmt.Fprintf(w, "    re-run: gate run %s %s --only %s --verbose\n",
			report.Plugin, report.Hook, f.Directory)
		if f.Result.OutputFile != "" {
			fmt.Fprintf(w, "    output: %s\n", f.Result.OutputFile)
		}
		if f.Result.DebugFile != "" {
			fmt.Fprintf(w, "    debug:  %s\n", f.Result.DebugFile)
		}
		fmt.Fprintln(w)
	}
}

// classify distinguishes a broken check from one that never terminates.
func classify(result domain.RunResult) string {
	switch {
	case result.IdleTimedOut:
		return "killed after producing no output (idle timeout)"
	case result.TimedOut:
		return "killed after exceeding the absolute timeout"
	default:
		return fmt.Sprintf("failed with exit code %d", result.ExitCode)
	}
}
