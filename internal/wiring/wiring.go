// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinto/internal/adapters/config"
	_ "go.trai.ch/pinto/internal/adapters/console"
	_ "go.trai.ch/pinto/internal/adapters/daemon"
	_ "go.trai.ch/pinto/internal/adapters/fs"
	_ "go.trai.ch/pinto/internal/adapters/logger"
	_ "go.trai.ch/pinto/internal/adapters/pathcache"
	_ "go.trai.ch/pinto/internal/adapters/shell"
	_ "go.trai.ch/pinto/internal/adapters/telemetry"
	_ "go.trai.ch/pinto/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/pinto/internal/app"
	_ "go.trai.ch/pinto/internal/engine/formatter"
)
