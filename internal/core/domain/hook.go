package domain

import "time"

// DependencyRef names another plugin's hook that must complete before this
// hook is allowed to run. Optional dependencies are skipped when the plugin
// is not installed; required ones abort the run.
type DependencyRef struct {
	Plugin   string `json:"plugin"`
	Hook     string `json:"hook"`
	Optional bool   `json:"optional,omitempty"`
}

// HookDefinition is a hook as declared by a plugin. It is immutable once
// loaded from the plugin's hooks.json.
type HookDefinition struct {
	// Command is a shell template. It may contain "{files}" (batch mode,
	// replaced by the session's modified files) or "{file}" (per-file mode,
	// replaced by the changed file's relative path).
	Command string

	// DirsWith lists marker files or globs that identify target directories.
	// An entry may hold comma-separated alternatives, any of which satisfies
	// it. Empty means the project root is the only target.
	DirsWith []string

	// DirTest is a shell predicate run inside a candidate directory. A
	// non-zero exit excludes the directory.
	DirTest string

	// IfChanged gates cache invalidation. Empty means the hook is never
	// cache-eligible and always runs.
	IfChanged []string

	// IdleTimeout kills the command when no output arrives for this long.
	// Zero disables the idle timer.
	IdleTimeout time.Duration

	DependsOn []DependencyRef
}

// HookOverride carries user/project settings applied on top of a plugin's
// definition. Nil pointers mean "no override". A zero IdleTimeout override
// disables the idle timer explicitly.
type HookOverride struct {
	Enabled     *bool
	Command     *string
	IfChanged   []string
	IdleTimeout *time.Duration
}

// ResolvedHookConfig is one executable unit: a hook definition bound to a
// single target directory after overrides were applied. It is recomputed on
// every invocation and never persisted.
type ResolvedHookConfig struct {
	Plugin      string
	Hook        string
	Directory   string
	Command     string
	Enabled     bool
	IfChanged   []string
	IdleTimeout time.Duration
}

// PluginInfo is the registry's view of one installed plugin.
type PluginInfo struct {
	Name  string
	Root  string
	Hooks map[string]HookDefinition
}
