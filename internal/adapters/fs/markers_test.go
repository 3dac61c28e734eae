package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/fs"
	"go.trai.ch/gate/internal/core/domain"
)

func newMarkers() *fs.Markers {
	return fs.NewMarkers(fs.NewWalker())
}

func TestMarkers_NoDirsWithYieldsProjectRoot(t *testing.T) {
	root := t.TempDir()

	dirs, err := newMarkers().FindDirs(context.Background(), root, domain.HookDefinition{})
	require.NoError(t, err)
	require.Equal(t, []string{root}, dirs)
}

func TestMarkers_FindDirs_MatchesMarkerAndSkipsIgnored(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "b", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "c", "package.json"), "{}")
	writeFile(t, filepath.Join(root, ".gitignore"), "c/\n")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0o750))

	def := domain.HookDefinition{DirsWith: []string{"package.json"}}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "a"), filepath.Join(root, "b")}, dirs)
}

func TestMarkers_FindDirs_AllMarkersRequired(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "both", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "both", "tsconfig.json"), "{}")
	writeFile(t, filepath.Join(root, "one", "package.json"), "{}")

	def := domain.HookDefinition{DirsWith: []string{"package.json", "tsconfig.json"}}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "both")}, dirs)
}

func TestMarkers_CommaSeparatedAlternatives(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "biome.jsonc"), "{}")

	def := domain.HookDefinition{DirsWith: []string{"biome.json,biome.jsonc"}}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "x")}, dirs)
}

func TestMarkers_GlobMarker(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "svc", "app.csproj"), "<Project/>")

	def := domain.HookDefinition{DirsWith: []string{"*.csproj"}}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "svc")}, dirs)
}

func TestMarkers_DirTestPredicate(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "yes", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "yes", "Makefile"), "all:")
	writeFile(t, filepath.Join(root, "no", "package.json"), "{}")

	def := domain.HookDefinition{
		DirsWith: []string{"package.json"},
		DirTest:  "test -f Makefile",
	}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(root, "yes")}, dirs)
}

func TestMarkers_FailingPredicateIsNotFatal(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "x", "package.json"), "{}")

	def := domain.HookDefinition{
		DirsWith: []string{"package.json"},
		DirTest:  "/definitely/not/an/interpreter",
	}
	dirs, err := newMarkers().FindDirs(context.Background(), root, def)
	require.NoError(t, err)
	require.Empty(t, dirs)
}

func TestMarkers_FindEnclosing_ReturnsLowestMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), "{}")
	writeFile(t, filepath.Join(root, "pkg", "package.json"), "{}")
	writeFile(t, filepath.Join(root, "pkg", "src", "main.ts"), "")

	def := domain.HookDefinition{DirsWith: []string{"package.json"}}
	dir, ok, err := newMarkers().FindEnclosing(context.Background(), root,
		filepath.Join(root, "pkg", "src", "main.ts"), def)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "pkg"), dir)
}

func TestMarkers_FindEnclosing_NoMatch(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.ts"), "")

	def := domain.HookDefinition{DirsWith: []string{"package.json"}}
	_, ok, err := newMarkers().FindEnclosing(context.Background(), root,
		filepath.Join(root, "src", "main.ts"), def)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMarkers_FindEnclosing_FileOutsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(outside, "package.json"), "{}")
	writeFile(t, filepath.Join(outside, "main.ts"), "")

	def := domain.HookDefinition{DirsWith: []string{"package.json"}}
	_, ok, err := newMarkers().FindEnclosing(context.Background(), root,
		filepath.Join(outside, "main.ts"), def)
	require.NoError(t, err)
	require.False(t, ok)
}
