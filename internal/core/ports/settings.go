package ports

import "go.trai.ch/gate/internal/core/domain"

// SettingsSource provides user/project override data for hooks, keyed by
// plugin and hook name. Missing settings files yield empty overrides.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsSource interface {
	// Overrides returns the merged override for one hook. Project settings
	// take precedence over user settings.
	Overrides(plugin, hook string) (domain.HookOverride, error)
}
