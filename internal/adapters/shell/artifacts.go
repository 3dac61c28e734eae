package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

// writeArtifacts persists the captured output and, for debug runs, a
// supervision dump. Best effort; artifact failures are logged, never fatal.
func (r *Runner) writeArtifacts(result *domain.RunResult, spec ports.RunSpec, start time.Time, reason string) {
	stamp := fmt.Sprintf("%s_%s_%d", spec.Label, sanitizeDir(spec.Directory), start.UnixMilli())

	if result.Output != "" {
		path := filepath.Join(os.TempDir(), stamp+".output.txt")
		if err := os.WriteFile(path, []byte(result.Output), domain.FilePerm); err != nil {
			r.logger.Warn("failed to write output artifact " + path + ": " + err.Error())
		} else {
			result.OutputFile = path
		}
	}

	if !spec.Debug {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "command: %s\n", spec.Command)
	fmt.Fprintf(&b, "directory: %s\n", spec.Directory)
	fmt.Fprintf(&b, "started: %s\n", start.Format(time.RFC3339))
	fmt.Fprintf(&b, "duration: %s\n", result.Duration)
	fmt.Fprintf(&b, "exit code: %d\n", result.ExitCode)
	if reason != "" {
		fmt.Fprintf(&b, "killed: %s\n", reason)
	}
	if len(spec.Env) > 0 {
		fmt.Fprintf(&b, "env:\n")
		for _, kv := range spec.Env {
			fmt.Fprintf(&b, "  %s\n", kv)
		}
	}
	path := filepath.Join(os.TempDir(), stamp+".debug.txt")
	if err := os.WriteFile(path, []byte(b.String()), domain.FilePerm); err != nil {
		r.logger.Warn("failed to write debug artifact " + path + ": " + err.Error())
		return
	}
	result.DebugFile = path
}

// sanitizeDir makes a directory path usable inside a file name.
func sanitizeDir(dir string) string {
	dir = strings.Trim(dir, string(filepath.Separator))
	return strings.ReplaceAll(dir, string(filepath.Separator), "-")
}
