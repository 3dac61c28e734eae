package domain

import (
	"os"
	"path/filepath"
)

const (
	// GateDirName is the name of the per-user state directory under $HOME.
	GateDirName = ".gate"

	// LocksDirName holds slot lock files.
	LocksDirName = "locks"

	// CacheDirName holds per-project change-detection manifests.
	CacheDirName = "cache"

	// SessionsDirName holds per-session state (modified files, sentinels).
	SessionsDirName = "sessions"

	// PluginsDirName is where installed plugins live, both under the state
	// directory and under a project's .gate directory.
	PluginsDirName = "plugins"

	// CoordinatorSocketName is the coordinator's Unix socket file.
	CoordinatorSocketName = "coordinator.sock"

	// CoordinatorPIDName is the coordinator's pid file.
	CoordinatorPIDName = "coordinator.pid"

	// SettingsFileName is the user-level override file under the state dir.
	SettingsFileName = "settings.yaml"

	// ProjectFileName is the project-level override file at the project root.
	ProjectFileName = "gate.yaml"

	// HooksFileName is the per-plugin hook declaration file.
	HooksFileName = "hooks.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Environment variables honored by the engine.
const (
	// EnvHome overrides the state directory.
	EnvHome = "GATE_HOME"

	// EnvProjectRoot overrides project root detection.
	EnvProjectRoot = "GATE_PROJECT_ROOT"

	// EnvAbsoluteTimeout overrides the absolute command timeout, in seconds.
	EnvAbsoluteTimeout = "GATE_ABSOLUTE_TIMEOUT"

	// EnvDisable short-circuits the whole engine to a silent success.
	EnvDisable = "GATE_DISABLE"

	// EnvSessionID scopes per-file caches and modified-file tracking.
	EnvSessionID = "GATE_SESSION_ID"
)

// ProjectRoot returns the project root: $GATE_PROJECT_ROOT, or the working
// directory.
func ProjectRoot() string {
	if dir := os.Getenv(EnvProjectRoot); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

// StatePath returns the root state directory: $GATE_HOME, or ~/.gate.
func StatePath() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: relative state dir in the working directory.
		return GateDirName
	}
	return filepath.Join(home, GateDirName)
}

// LocksPath returns the directory holding slot lock files.
func LocksPath() string {
	return filepath.Join(StatePath(), LocksDirName)
}

// CachePath returns the directory holding change-detection manifests.
func CachePath() string {
	return filepath.Join(StatePath(), CacheDirName)
}

// SessionPath returns the state directory for one session.
func SessionPath(sessionID string) string {
	return filepath.Join(StatePath(), SessionsDirName, sessionID)
}

// CoordinatorSocketPath returns the coordinator's Unix socket path.
func CoordinatorSocketPath() string {
	return filepath.Join(StatePath(), CoordinatorSocketName)
}

// CoordinatorPIDPath returns the coordinator's pid file path.
func CoordinatorPIDPath() string {
	return filepath.Join(StatePath(), CoordinatorPIDName)
}

// UserPluginsPath returns the user-level plugin directory.
func UserPluginsPath() string {
	return filepath.Join(StatePath(), PluginsDirName)
}

// ProjectPluginsPath returns the project-level plugin directory.
func ProjectPluginsPath(projectRoot string) string {
	return filepath.Join(projectRoot, GateDirName, PluginsDirName)
}
