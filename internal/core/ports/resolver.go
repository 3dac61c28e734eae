package ports

import "go.trai.ch/gate/internal/core/domain"

// ConfigResolver merges a hook definition with override data into one
// executable config per target directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ConfigResolver interface {
	// Resolve produces configs for the given directories. When only is
	// non-empty the result is filtered to that directory;
	// domain.ErrOnlyDirNotMatched is returned when nothing matches.
	// A disabled hook resolves to zero configs.
	Resolve(plugin, hook string, def domain.HookDefinition, dirs []string, only string) ([]domain.ResolvedHookConfig, error)
}
