package domain

import "go.trai.ch/zerr"

var (
	// ErrPluginNotFound is returned when a requested plugin is not installed.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrHookNotFound is returned when a plugin does not declare the requested hook.
	ErrHookNotFound = zerr.New("hook not found")

	// ErrOnlyDirNotMatched is returned when --only names a directory that
	// discovery did not produce.
	ErrOnlyDirNotMatched = zerr.New("--only directory did not match any target")

	// ErrDependencyMissing is returned when a required dependency plugin is absent.
	ErrDependencyMissing = zerr.New("required dependency plugin not installed")

	// ErrDependencyFailed is returned when a dependency hook run exits non-zero.
	ErrDependencyFailed = zerr.New("dependency hook failed")

	// ErrDependencyTimeout is returned when waiting on a running dependency
	// exceeds the bounded wait.
	ErrDependencyTimeout = zerr.New("timed out waiting for dependency hook")

	// ErrValidationFailed marks a run where at least one directory failed.
	// It maps to exit code 2, distinct from configuration errors.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrSlotHeld is returned by a non-blocking acquire when the slot is taken.
	ErrSlotHeld = zerr.New("slot already held")
)

// Exit codes of the gate binary.
const (
	ExitOK               = 0
	ExitConfigError      = 1
	ExitValidationFailed = 2
)
