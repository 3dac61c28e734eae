// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gate/internal/adapters/cache"
	_ "go.trai.ch/gate/internal/adapters/config"
	_ "go.trai.ch/gate/internal/adapters/fs"
	_ "go.trai.ch/gate/internal/adapters/lock"
	_ "go.trai.ch/gate/internal/adapters/logger"
	_ "go.trai.ch/gate/internal/adapters/registry"
	_ "go.trai.ch/gate/internal/adapters/settings"
	_ "go.trai.ch/gate/internal/adapters/shell"
	_ "go.trai.ch/gate/internal/adapters/telemetry"
	_ "go.trai.ch/gate/internal/adapters/tracker"
	// Register app and engine nodes.
	_ "go.trai.ch/gate/internal/app"
	_ "go.trai.ch/gate/internal/engine/orchestrator"
)
