// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/gate/internal/core/domain"

// PluginRegistry resolves installed plugins and their declared hooks.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PluginRegistry interface {
	// Lookup returns the plugin's on-disk root and hook definitions.
	// Returns domain.ErrPluginNotFound when the plugin is not installed.
	Lookup(name string) (*domain.PluginInfo, error)
}
