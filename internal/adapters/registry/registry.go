// Package registry resolves installed plugins and parses their hooks.json.
package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PluginRegistry = (*Registry)(nil)

// Registry implements ports.PluginRegistry over the filesystem. Plugins are
// looked up in the project's .gate/plugins directory first, then the user's;
// project installs shadow user installs of the same name.
type Registry struct {
	searchPaths []string
	logger      ports.Logger
}

// New creates a registry searching the standard plugin locations for the
// given project root.
func New(projectRoot string, logger ports.Logger) *Registry {
	return &Registry{
		searchPaths: []string{
			domain.ProjectPluginsPath(projectRoot),
			domain.UserPluginsPath(),
		},
		logger: logger,
	}
}

// NewWithPaths creates a registry with explicit search paths. Used in tests.
func NewWithPaths(paths []string, logger ports.Logger) *Registry {
	return &Registry{searchPaths: paths, logger: logger}
}

// Lookup returns the plugin's root and hook definitions, or
// domain.ErrPluginNotFound.
func (r *Registry) Lookup(name string) (*domain.PluginInfo, error) {
	for _, base := range r.searchPaths {
		root := filepath.Join(base, name)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			continue
		}

		hooks, err := r.loadHooks(root)
		if err != nil {
			// A malformed hooks.json makes the plugin unusable from this
			// location, but a copy elsewhere may still be valid.
			r.logger.Warn("skipping plugin with unreadable hooks.json: " + root)
			continue
		}

		return &domain.PluginInfo{Name: name, Root: root, Hooks: hooks}, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "plugin lookup failed"), "plugin", name)
}

// hooksFile is the on-disk shape of a plugin's hooks.json.
type hooksFile struct {
	Hooks map[string]hookDTO `json:"hooks"`
}

type hookDTO struct {
	Command       string                 `json:"command"`
	DirsWith      []string               `json:"dirsWith"`
	DirTest       string                 `json:"dirTest"`
	IfChanged     []string               `json:"ifChanged"`
	IdleTimeoutMs int64                  `json:"idleTimeoutMs"`
	DependsOn     []domain.DependencyRef `json:"dependsOn"`
}

func (r *Registry) loadHooks(pluginRoot string) (map[string]domain.HookDefinition, error) {
	path := filepath.Join(pluginRoot, domain.HooksFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the plugin search paths
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// A plugin without hooks is valid; it just declares none.
			return map[string]domain.HookDefinition{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read hooks file"), "path", path)
	}

	var file hooksFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse hooks file"), "path", path)
	}

	hooks := make(map[string]domain.HookDefinition, len(file.Hooks))
	for name, dto := range file.Hooks {
		hooks[name] = domain.HookDefinition{
			Command:     dto.Command,
			DirsWith:    dto.DirsWith,
			DirTest:     dto.DirTest,
			IfChanged:   dto.IfChanged,
			IdleTimeout: time.Duration(dto.IdleTimeoutMs) * time.Millisecond,
			DependsOn:   dto.DependsOn,
		}
	}
	return hooks, nil
}
