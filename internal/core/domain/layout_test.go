package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/core/domain"
)

func TestStatePath_HonorsEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.EnvHome, dir)

	require.Equal(t, dir, domain.StatePath())
	require.Equal(t, filepath.Join(dir, "locks"), domain.LocksPath())
	require.Equal(t, filepath.Join(dir, "cache"), domain.CachePath())
	require.Equal(t, filepath.Join(dir, "sessions", "s1"), domain.SessionPath("s1"))
	require.Equal(t, filepath.Join(dir, "coordinator.sock"), domain.CoordinatorSocketPath())
	require.Equal(t, filepath.Join(dir, "plugins"), domain.UserPluginsPath())
}

func TestProjectRoot_HonorsEnv(t *testing.T) {
	t.Setenv(domain.EnvProjectRoot, "/work/repo")
	require.Equal(t, "/work/repo", domain.ProjectRoot())
	require.Equal(t, filepath.Join("/work/repo", ".gate", "plugins"), domain.ProjectPluginsPath("/work/repo"))
}

func TestCacheKey_String(t *testing.T) {
	batch := domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: "/p"}
	perFile := domain.CacheKey{SessionID: "s1", FilePath: "/p/a.ts", Plugin: "biome", Hook: "lint", Directory: "/p"}

	require.NotEqual(t, batch.String(), perFile.String())
	require.Equal(t, batch.String(), domain.CacheKey{Plugin: "biome", Hook: "lint", Directory: "/p"}.String())
}
