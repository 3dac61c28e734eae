package ports

import (
	"context"

	"go.trai.ch/gate/internal/core/domain"
)

// MarkerFinder locates target directories for a hook.
//
//go:generate go run go.uber.org/mock/mockgen -source=discovery.go -destination=mocks/mock_discovery.go -package=mocks
type MarkerFinder interface {
	// FindDirs walks the project tree and returns every directory matching
	// the definition's markers, in deterministic depth-first pre-order.
	// An empty DirsWith yields exactly the project root.
	FindDirs(ctx context.Context, projectRoot string, def domain.HookDefinition) ([]string, error)

	// FindEnclosing walks upward from file's directory to the project root
	// and returns the first (lowest) matching directory, or ok=false.
	FindEnclosing(ctx context.Context, projectRoot, file string, def domain.HookDefinition) (dir string, ok bool, err error)
}
