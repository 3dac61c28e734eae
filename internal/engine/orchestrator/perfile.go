package orchestrator

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

// CheckFile runs the per-file variant of a hook against one changed file.
// The outcome is always a decision, never a shell exit: a failing command
// blocks, everything else continues. The error covers configuration
// problems only.
func (o *Orchestrator) CheckFile(ctx context.Context, plugin, hook, file string, opts Options) (domain.Decision, error) {
	def, err := o.lookupHook(plugin, hook)
	if err != nil {
		return domain.Decision{}, err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return domain.Decision{}, zerr.With(zerr.Wrap(err, "failed to resolve checked file"), "file", file)
	}

	root := domain.ProjectRoot()
	dir, ok, err := o.finder.FindEnclosing(ctx, root, abs, def)
	if err != nil {
		return domain.Decision{}, zerr.Wrap(err, "ancestor discovery failed")
	}
	if !ok {
		return domain.Decision{Decision: domain.DecisionContinue, Reason: "no matching directory"}, nil
	}

	configs, err := o.resolver.Resolve(plugin, hook, def, []string{dir}, "")
	if err != nil {
		return domain.Decision{}, err
	}
	if len(configs) == 0 {
		return domain.Decision{Decision: domain.DecisionContinue, Reason: "hook disabled"}, nil
	}
	cfg := configs[0]

	key := domain.CacheKey{
		SessionID: opts.SessionID,
		FilePath:  abs,
		Plugin:    plugin,
		Hook:      hook,
		Directory: cfg.Directory,
	}
	if !opts.NoCache && !o.cache.HasChanges(ctx, key, cfg.IfChanged, cfg.Command) {
		return domain.Decision{Decision: domain.DecisionContinue, Reason: "unchanged"}, nil
	}

	rel, err := filepath.Rel(cfg.Directory, abs)
	if err != nil {
		rel = abs
	}

	handle, err := o.locker.Acquire(ctx, plugin, hook)
	if err != nil {
		return domain.Decision{}, zerr.Wrap(err, "failed to acquire slot")
	}
	defer handle.Release()

	result, err := o.runner.Run(ctx, ports.RunSpec{
		Directory:       cfg.Directory,
		Command:         strings.ReplaceAll(cfg.Command, "{file}", shellQuote(rel)),
		IdleTimeout:     cfg.IdleTimeout,
		AbsoluteTimeout: absoluteTimeout(),
		Debug:           opts.Debug,
		Label:           plugin + "-" + hook,
	})
	if err != nil {
		return domain.Decision{}, err
	}

	if !result.Success {
		return domain.Decision{Decision: domain.DecisionBlock, Reason: blockReason(result)}, nil
	}

	if !opts.NoCache {
		if err := o.cache.RecordSuccess(ctx, key, cfg.IfChanged, cfg.Command); err != nil {
			o.logger.Warn("failed to record cache manifest: " + err.Error())
		}
	}
	if opts.SessionID != "" {
		if err := o.tracker.RecordFile(opts.SessionID, abs); err != nil {
			o.logger.Warn("failed to record checked file: " + err.Error())
		}
	}
	return domain.Decision{Decision: domain.DecisionContinue}, nil
}

// blockReason distills a failed run into the text surfaced to the caller.
func blockReason(result domain.RunResult) string {
	switch {
	case result.IdleTimedOut:
		return "hook produced no output and was killed"
	case result.TimedOut:
		return "hook exceeded the absolute timeout"
	}
	if out := strings.TrimSpace(result.Output); out != "" {
		return out
	}
	return "hook failed"
}
