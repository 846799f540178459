// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xtask/internal/adapters/config"
	_ "go.trai.ch/xtask/internal/adapters/console"
	_ "go.trai.ch/xtask/internal/adapters/logger"
	_ "go.trai.ch/xtask/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/xtask/internal/app"
)
