package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gate/internal/core/domain"
)

// writePlugin installs a project-level plugin with the given hooks.json body.
func writePlugin(t *testing.T, projectRoot, name, hooksJSON string) {
	t.Helper()
	dir := filepath.Join(projectRoot, ".gate", "plugins", name)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hooks.json"), []byte(hooksJSON), 0o644))
}

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	tests := []struct {
		name         string
		hooksJSON    string
		args         []string
		expectedExit int
	}{
		{
			name:         "passing hook exits zero",
			hooksJSON:    `{"hooks":{"greet":{"command":"echo hello"}}}`,
			args:         []string{"gate", "run", "echo", "greet", "--skip-deps"},
			expectedExit: 0,
		},
		{
			name:         "failing hook exits two",
			hooksJSON:    `{"hooks":{"greet":{"command":"exit 1"}}}`,
			args:         []string{"gate", "run", "echo", "greet", "--skip-deps"},
			expectedExit: 2,
		},
		{
			name:         "unknown plugin exits one",
			hooksJSON:    `{"hooks":{"greet":{"command":"echo hello"}}}`,
			args:         []string{"gate", "run", "ghost", "greet", "--skip-deps"},
			expectedExit: 1,
		},
		{
			name:         "unknown hook exits one",
			hooksJSON:    `{"hooks":{"greet":{"command":"echo hello"}}}`,
			args:         []string{"gate", "run", "echo", "ghost", "--skip-deps"},
			expectedExit: 1,
		},
		{
			name:         "check always exits zero",
			hooksJSON:    `{"hooks":{"vet":{"command":"exit 1"}}}`,
			args:         []string{"gate", "check", "echo", "vet", "--file", "main.go"},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Cacheable wiring nodes memoize across runs; each case gets a
			// fresh graph.
			graft.ResetDefaultCache()
			projectRoot := t.TempDir()
			t.Setenv(domain.EnvHome, t.TempDir())
			t.Setenv(domain.EnvProjectRoot, projectRoot)
			t.Setenv(domain.EnvDisable, "")
			t.Setenv(domain.EnvSessionID, "")
			writePlugin(t, projectRoot, "echo", tt.hooksJSON)
			require.NoError(t, os.WriteFile(filepath.Join(projectRoot, "main.go"), []byte("package main\n"), 0o644))

			os.Args = tt.args
			require.Equal(t, tt.expectedExit, run())
		})
	}
}

func TestRun_DisabledShortCircuits(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	graft.ResetDefaultCache()
	t.Setenv(domain.EnvHome, t.TempDir())
	t.Setenv(domain.EnvProjectRoot, t.TempDir())
	t.Setenv(domain.EnvDisable, "1")

	// The plugin does not even exist; disable wins before any lookup.
	os.Args = []string{"gate", "run", "ghost", "greet"}
	require.Equal(t, 0, run())
}
