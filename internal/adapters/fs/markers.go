package fs

import (
	"context"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

var _ ports.MarkerFinder = (*Markers)(nil)

// Markers implements ports.MarkerFinder on top of the Walker.
type Markers struct {
	walker *Walker
}

// NewMarkers creates a new marker finder.
func NewMarkers(walker *Walker) *Markers {
	return &Markers{walker: walker}
}

// FindDirs walks the tree and returns every matching directory, pre-order.
func (m *Markers) FindDirs(ctx context.Context, projectRoot string, def domain.HookDefinition) ([]string, error) {
	if len(def.DirsWith) == 0 {
		return []string{projectRoot}, nil
	}

	var dirs []string
	for dir := range m.walker.WalkDirs(projectRoot) {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if m.dirMatches(ctx, dir, def) {
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

// FindEnclosing walks upward from the file toward the project root, returning
// the first (lowest) matching directory.
func (m *Markers) FindEnclosing(ctx context.Context, projectRoot, file string, def domain.HookDefinition) (string, bool, error) {
	if len(def.DirsWith) == 0 {
		return projectRoot, true, nil
	}

	dir := filepath.Dir(file)
	for {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		if rel, err := filepath.Rel(projectRoot, dir); err != nil || strings.HasPrefix(rel, "..") {
			return "", false, nil
		}
		if m.dirMatches(ctx, dir, def) {
			return dir, true, nil
		}
		if dir == projectRoot {
			return "", false, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// dirMatches checks that every DirsWith entry is satisfied and that DirTest,
// when set, exits zero. A predicate that errors for any reason counts as
// no-match, never as a fatal error.
func (m *Markers) dirMatches(ctx context.Context, dir string, def domain.HookDefinition) bool {
	for _, entry := range def.DirsWith {
		if !anyAlternativePresent(dir, entry) {
			return false
		}
	}

	if def.DirTest != "" {
		cmd := exec.CommandContext(ctx, "sh", "-c", def.DirTest) //nolint:gosec // Plugin-declared predicate
		cmd.Dir = dir
		if err := cmd.Run(); err != nil {
			return false
		}
	}
	return true
}

// anyAlternativePresent checks one DirsWith entry, which may hold
// comma-separated alternatives ("biome.json,biome.jsonc"). Each alternative
// is an exact file name or a glob over names in the directory.
func anyAlternativePresent(dir, entry string) bool {
	for _, alt := range strings.Split(entry, ",") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(dir, alt))
		if err == nil && len(matches) > 0 {
			return true
		}
	}
	return false
}
