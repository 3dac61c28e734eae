// Package orchestrator sequences one hook invocation from discovery to
// report. It is the only component that calls the other ports.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// depWaitTimeout bounds how long a run waits for a dependency hook that is
// already in flight elsewhere before giving up.
const depWaitTimeout = 5 * time.Minute

// SentinelFileName marks an aborted fail-fast run. A later run clears it
// before executing anything.
const SentinelFileName = "failfast"

// Options tune one invocation.
type Options struct {
	// Only restricts execution to a single target directory.
	Only string

	// NoCache bypasses change detection entirely: every directory runs and
	// no manifest is recorded.
	NoCache bool

	// FailFast aborts remaining directories after the first failure and
	// leaves a sentinel file behind.
	FailFast bool

	// SkipDeps suppresses the dependency protocol. Also set internally when
	// running a dependency, to break cycles.
	SkipDeps bool

	// Verbose streams command output instead of capturing it.
	Verbose bool

	// Debug forces artifact files even on success.
	Debug bool

	// SessionID scopes per-file cache keys and the modified-file set.
	SessionID string
}

// Orchestrator drives the hook execution state machine.
type Orchestrator struct {
	registry ports.PluginRegistry
	resolver ports.ConfigResolver
	finder   ports.MarkerFinder
	cache    ports.ChangeCache
	locker   ports.Locker
	runner   ports.Runner
	tracker  ports.SessionTracker
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates an Orchestrator from its collaborating ports.
func New(
	registry ports.PluginRegistry,
	resolver ports.ConfigResolver,
	finder ports.MarkerFinder,
	cache ports.ChangeCache,
	locker ports.Locker,
	runner ports.Runner,
	tracker ports.SessionTracker,
	tracer ports.Tracer,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		resolver: resolver,
		finder:   finder,
		cache:    cache,
		locker:   locker,
		runner:   runner,
		tracker:  tracker,
		tracer:   tracer,
		logger:   logger,
	}
}

// RunHook executes one hook over every matching directory. Validation
// failures land in the report; the error covers configuration and
// dependency problems only.
func (o *Orchestrator) RunHook(ctx context.Context, plugin, hook string, opts Options) (*domain.Report, error) {
	o.clearSentinel(opts.SessionID)

	def, err := o.lookupHook(plugin, hook)
	if err != nil {
		return nil, err
	}

	if !opts.SkipDeps {
		if err := o.resolveDeps(ctx, def.DependsOn, opts); err != nil {
			return nil, err
		}
	}

	root := domain.ProjectRoot()
	dirs, err := o.finder.FindDirs(ctx, root, def)
	if err != nil {
		return nil, zerr.Wrap(err, "directory discovery failed")
	}

	configs, err := o.resolver.Resolve(plugin, hook, def, dirs, opts.Only)
	if err != nil {
		return nil, err
	}

	report := &domain.Report{Plugin: plugin, Hook: hook}
	files := o.sessionFilesFor(configs, opts.SessionID, root)

	for _, cfg := range configs {
		key := domain.CacheKey{Plugin: plugin, Hook: hook, Directory: cfg.Directory}
		label := plugin + "-" + hook

		_, span := o.tracer.Start(ctx, fmt.Sprintf("%s: %s", label, cfg.Directory))

		if !opts.NoCache && !o.cache.HasChanges(ctx, key, cfg.IfChanged, cfg.Command) {
			report.Skipped++
			span.Cached()
			span.End(nil)
			continue
		}

		result, err := o.executeDirectory(ctx, cfg, label, files, opts)
		if err != nil {
			span.End(err)
			return nil, err
		}
		_, _ = span.Write([]byte(result.Output))
		report.Executed++

		if result.Success {
			span.End(nil)
			if !opts.NoCache {
				if err := o.cache.RecordSuccess(ctx, key, cfg.IfChanged, cfg.Command); err != nil {
					o.logger.Warn("failed to record cache manifest: " + err.Error())
				}
			}
			continue
		}

		span.End(errors.New("hook failed"))
		report.Failures = append(report.Failures, domain.DirectoryFailure{
			Directory: cfg.Directory,
			Result:    result,
		})
		if opts.FailFast {
			o.writeSentinel(opts.SessionID)
			break
		}
	}

	return report, nil
}

// executeDirectory runs one resolved config under its slot.
func (o *Orchestrator) executeDirectory(
	ctx context.Context,
	cfg domain.ResolvedHookConfig,
	label string,
	files []string,
	opts Options,
) (domain.RunResult, error) {
	handle, err := o.locker.Acquire(ctx, cfg.Plugin, cfg.Hook)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to acquire slot"), "plugin", cfg.Plugin)
		return domain.RunResult{}, zerr.With(err, "hook", cfg.Hook)
	}
	defer handle.Release()

	command := substituteFiles(cfg.Command, cfg.Directory, files)
	return o.runner.Run(ctx, ports.RunSpec{
		Directory:       cfg.Directory,
		Command:         command,
		IdleTimeout:     cfg.IdleTimeout,
		AbsoluteTimeout: absoluteTimeout(),
		Verbose:         opts.Verbose,
		Debug:           opts.Debug,
		Label:           label,
	})
}

// resolveDeps enforces the dependency protocol before any directory runs.
func (o *Orchestrator) resolveDeps(ctx context.Context, deps []domain.DependencyRef, opts Options) error {
	for _, dep := range deps {
		_, err := o.lookupHook(dep.Plugin, dep.Hook)
		if errors.Is(err, domain.ErrPluginNotFound) || errors.Is(err, domain.ErrHookNotFound) {
			if dep.Optional {
				o.logger.Info("skipping optional dependency " + dep.Plugin + "/" + dep.Hook)
				continue
			}
			depErr := zerr.With(zerr.Wrap(domain.ErrDependencyMissing, "dependency resolution failed"), "plugin", dep.Plugin)
			return zerr.With(depErr, "hook", dep.Hook)
		}
		if err != nil {
			return err
		}

		// An in-flight run elsewhere satisfies the dependency once it
		// finishes. Piggyback on it instead of starting a redundant one.
		if o.locker.IsHeld(dep.Plugin, dep.Hook) {
			if err := o.locker.Wait(ctx, dep.Plugin, dep.Hook, depWaitTimeout); err != nil {
				waitErr := zerr.With(zerr.Wrap(err, "dependency did not finish in time"), "plugin", dep.Plugin)
				return zerr.With(waitErr, "hook", dep.Hook)
			}
			continue
		}

		depReport, err := o.RunHook(ctx, dep.Plugin, dep.Hook, Options{
			SkipDeps:  true,
			Verbose:   opts.Verbose,
			Debug:     opts.Debug,
			SessionID: opts.SessionID,
		})
		if err != nil {
			return err
		}
		if depReport.Failed() {
			depErr := zerr.With(zerr.Wrap(domain.ErrDependencyFailed, "dependency run failed"), "plugin", dep.Plugin)
			return zerr.With(depErr, "hook", dep.Hook)
		}
	}
	return nil
}

// lookupHook resolves a (plugin, hook) pair to its definition.
func (o *Orchestrator) lookupHook(plugin, hook string) (domain.HookDefinition, error) {
	info, err := o.registry.Lookup(plugin)
	if err != nil {
		return domain.HookDefinition{}, err
	}
	def, ok := info.Hooks[hook]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrHookNotFound, "hook lookup failed"), "plugin", plugin)
		return domain.HookDefinition{}, zerr.With(err, "hook", hook)
	}
	return def, nil
}

// sessionFiles returns the session's modified files, scoped to the project
// sessionFilesFor reads the session file set only when a command will
// consume it. Hooks without a "{files}" placeholder never touch the
// tracker.
func (o *Orchestrator) sessionFilesFor(configs []domain.ResolvedHookConfig, sessionID, root string) []string {
	for _, cfg := range configs {
		if strings.Contains(cfg.Command, filesPlaceholder) {
			return o.sessionFiles(sessionID, root)
		}
	}
	return nil
}

// root. No session or a tracker error yields an empty set.
func (o *Orchestrator) sessionFiles(sessionID, root string) []string {
	if sessionID == "" {
		return nil
	}
	files, err := o.tracker.ModifiedFiles(sessionID)
	if err != nil {
		o.logger.Warn("failed to read session file set: " + err.Error())
		return nil
	}
	var scoped []string
	for _, f := range files {
		if strings.HasPrefix(f, root+string(filepath.Separator)) || f == root {
			scoped = append(scoped, f)
		}
	}
	return scoped
}

// filesPlaceholder marks where a hook command receives the session's
// modified files.
const filesPlaceholder = "{files}"

// substituteFiles expands the "{files}" placeholder with the session's
// modified files, relative to dir and shell-quoted. An empty set removes
// the placeholder and one adjacent space; the rest of the command is
// left untouched.
func substituteFiles(command, dir string, files []string) string {
	if !strings.Contains(command, filesPlaceholder) {
		return command
	}
	quoted := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(dir, f)
		if err != nil {
			rel = f
		}
		quoted = append(quoted, shellQuote(rel))
	}
	joined := strings.Join(quoted, " ")
	if joined == "" {
		command = strings.ReplaceAll(command, " "+filesPlaceholder, "")
		command = strings.ReplaceAll(command, filesPlaceholder+" ", "")
		return strings.ReplaceAll(command, filesPlaceholder, "")
	}
	return strings.ReplaceAll(command, filesPlaceholder, joined)
}

// shellQuote wraps s in single quotes, escaping embedded ones.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// absoluteTimeout resolves the absolute command timeout. Zero lets the
// runner apply its default.
func absoluteTimeout() time.Duration {
	raw := os.Getenv(domain.EnvAbsoluteTimeout)
	if raw == "" {
		return 0
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

// sentinelPath scopes the fail-fast sentinel to the session, or to the
// project when no session is active.
func sentinelPath(sessionID string) string {
	if sessionID == "" {
		sessionID = fmt.Sprintf("project-%016x", xxhash.Sum64String(domain.ProjectRoot()))
	}
	return filepath.Join(domain.SessionPath(sessionID), SentinelFileName)
}

func (o *Orchestrator) clearSentinel(sessionID string) {
	path := sentinelPath(sessionID)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		o.logger.Warn("failed to clear fail-fast sentinel " + path + ": " + err.Error())
	}
}

func (o *Orchestrator) writeSentinel(sessionID string) {
	path := sentinelPath(sessionID)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		o.logger.Warn("failed to create sentinel directory: " + err.Error())
		return
	}
	content := time.Now().UTC().Format(time.RFC3339) + "\n"
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		o.logger.Warn("failed to write fail-fast sentinel " + path + ": " + err.Error())
	}
}
