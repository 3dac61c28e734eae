// Package settings merges user and project override files for hooks.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsSource = (*Source)(nil)

// Source implements ports.SettingsSource over two YAML files: the user-level
// settings under the state directory and the project-level gate.yaml at the
// project root. Project values win over user values, field by field.
type Source struct {
	userPath    string
	projectPath string
}

// New creates a source reading the standard locations for the project root.
func New(projectRoot string) *Source {
	return &Source{
		userPath:    filepath.Join(domain.StatePath(), domain.SettingsFileName),
		projectPath: filepath.Join(projectRoot, domain.ProjectFileName),
	}
}

// NewWithPaths creates a source with explicit file paths. Used in tests.
func NewWithPaths(userPath, projectPath string) *Source {
	return &Source{userPath: userPath, projectPath: projectPath}
}

// settingsFile is the on-disk YAML shape.
type settingsFile struct {
	Overrides map[string]map[string]overrideDTO `yaml:"overrides"`
}

type overrideDTO struct {
	Enabled       *bool    `yaml:"enabled"`
	Command       *string  `yaml:"command"`
	IfChanged     []string `yaml:"ifChanged"`
	IdleTimeoutMs *int64   `yaml:"idleTimeoutMs"`
}

// Overrides returns the merged override for one hook. Missing files are not
// errors; they contribute nothing.
func (s *Source) Overrides(plugin, hook string) (domain.HookOverride, error) {
	var merged domain.HookOverride

	for _, path := range []string{s.userPath, s.projectPath} {
		dto, found, err := loadOverride(path, plugin, hook)
		if err != nil {
			return domain.HookOverride{}, err
		}
		if !found {
			continue
		}
		if dto.Enabled != nil {
			merged.Enabled = dto.Enabled
		}
		if dto.Command != nil {
			merged.Command = dto.Command
		}
		// ifChanged entries are additive across scopes.
		merged.IfChanged = append(merged.IfChanged, dto.IfChanged...)
		if dto.IdleTimeoutMs != nil {
			d := time.Duration(*dto.IdleTimeoutMs) * time.Millisecond
			merged.IdleTimeout = &d
		}
	}

	return merged, nil
}

func loadOverride(path, plugin, hook string) (overrideDTO, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Paths come from the layout, not user input
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return overrideDTO{}, false, nil
		}
		return overrideDTO{}, false, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return overrideDTO{}, false, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
	}

	hooks, ok := file.Overrides[plugin]
	if !ok {
		return overrideDTO{}, false, nil
	}
	dto, ok := hooks[hook]
	return dto, ok, nil
}
