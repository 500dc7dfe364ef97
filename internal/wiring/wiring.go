// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/hoard/internal/adapters/config"
	_ "go.trai.ch/hoard/internal/adapters/globaldir"
	_ "go.trai.ch/hoard/internal/adapters/localdir"
	_ "go.trai.ch/hoard/internal/adapters/lockfile"
	_ "go.trai.ch/hoard/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/hoard/internal/app"
	_ "go.trai.ch/hoard/internal/engine/resolver"
)
