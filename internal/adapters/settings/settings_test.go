package settings_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/adapters/settings"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func absentPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.yaml")
}

func TestSource_MissingFilesYieldEmptyOverride(t *testing.T) {
	src := settings.NewWithPaths(absentPath(t), absentPath(t))

	override, err := src.Overrides("biome", "lint")
	require.NoError(t, err)
	require.Nil(t, override.Enabled)
	require.Nil(t, override.Command)
	require.Nil(t, override.IdleTimeout)
	require.Empty(t, override.IfChanged)
}

func TestSource_UserOverrideApplies(t *testing.T) {
	user := writeYAML(t, `
overrides:
  biome:
    lint:
      enabled: false
      command: biome check --fix
      idleTimeoutMs: 5000
`)
	src := settings.NewWithPaths(user, absentPath(t))

	override, err := src.Overrides("biome", "lint")
	require.NoError(t, err)
	require.NotNil(t, override.Enabled)
	require.False(t, *override.Enabled)
	require.NotNil(t, override.Command)
	require.Equal(t, "biome check --fix", *override.Command)
	require.NotNil(t, override.IdleTimeout)
	require.Equal(t, 5*time.Second, *override.IdleTimeout)
}

func TestSource_ProjectWinsFieldByField(t *testing.T) {
	user := writeYAML(t, `
overrides:
  biome:
    lint:
      enabled: false
      command: user command
`)
	project := writeYAML(t, `
overrides:
  biome:
    lint:
      enabled: true
`)
	src := settings.NewWithPaths(user, project)

	override, err := src.Overrides("biome", "lint")
	require.NoError(t, err)
	// Project flips enabled but the user command survives.
	require.NotNil(t, override.Enabled)
	require.True(t, *override.Enabled)
	require.NotNil(t, override.Command)
	require.Equal(t, "user command", *override.Command)
}

func TestSource_IfChangedIsAdditiveAcrossScopes(t *testing.T) {
	user := writeYAML(t, `
overrides:
  biome:
    lint:
      ifChanged: ["*.json"]
`)
	project := writeYAML(t, `
overrides:
  biome:
    lint:
      ifChanged: ["**/*.ts"]
`)
	src := settings.NewWithPaths(user, project)

	override, err := src.Overrides("biome", "lint")
	require.NoError(t, err)
	require.Equal(t, []string{"*.json", "**/*.ts"}, override.IfChanged)
}

func TestSource_UnknownHookYieldsEmptyOverride(t *testing.T) {
	user := writeYAML(t, `
overrides:
  biome:
    format:
      enabled: false
`)
	src := settings.NewWithPaths(user, absentPath(t))

	override, err := src.Overrides("biome", "lint")
	require.NoError(t, err)
	require.Nil(t, override.Enabled)
}

func TestSource_MalformedFileFails(t *testing.T) {
	user := writeYAML(t, "overrides: [not a map")
	src := settings.NewWithPaths(user, absentPath(t))

	_, err := src.Overrides("biome", "lint")
	require.Error(t, err)
}
