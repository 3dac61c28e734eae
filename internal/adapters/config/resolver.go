// Package config resolves hook definitions and overrides into per-directory
// execution configs.
package config

import (
	"path/filepath"
	"slices"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

// Resolver implements ports.ConfigResolver. It is pure apart from the
// settings lookup: no filesystem walking happens here.
type Resolver struct {
	settings ports.SettingsSource
}

// NewResolver creates a new Resolver.
func NewResolver(settings ports.SettingsSource) *Resolver {
	return &Resolver{settings: settings}
}

// Resolve produces one config per target directory with overrides applied.
func (r *Resolver) Resolve(plugin, hook string, def domain.HookDefinition, dirs []string, only string) ([]domain.ResolvedHookConfig, error) {
	override, err := r.settings.Overrides(plugin, hook)
	if err != nil {
		return nil, err
	}

	if override.Enabled != nil && !*override.Enabled {
		return nil, nil
	}

	command := def.Command
	if override.Command != nil {
		command = *override.Command
	}

	ifChanged := slices.Clone(def.IfChanged)
	ifChanged = append(ifChanged, override.IfChanged...)

	idle := def.IdleTimeout
	if override.IdleTimeout != nil {
		idle = *override.IdleTimeout
	}

	if only != "" {
		matched := ""
		for _, dir := range dirs {
			if sameDir(dir, only) {
				matched = dir
				break
			}
		}
		if matched == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrOnlyDirNotMatched, "target filtering failed"), "only", only)
		}
		dirs = []string{matched}
	}

	configs := make([]domain.ResolvedHookConfig, 0, len(dirs))
	for _, dir := range dirs {
		configs = append(configs, domain.ResolvedHookConfig{
			Plugin:      plugin,
			Hook:        hook,
			Directory:   dir,
			Command:     command,
			Enabled:     true,
			IfChanged:   ifChanged,
			IdleTimeout: idle,
		})
	}
	return configs, nil
}

// sameDir compares a discovered directory against a user-supplied one, which
// may be relative.
func sameDir(dir, only string) bool {
	if dir == only {
		return true
	}
	abs, err := filepath.Abs(only)
	if err != nil {
		return false
	}
	return filepath.Clean(dir) == abs
}
