// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/twin/internal/adapters/config"
	_ "go.trai.ch/twin/internal/adapters/fs"
	_ "go.trai.ch/twin/internal/adapters/logger"
	_ "go.trai.ch/twin/internal/adapters/planstore"
	_ "go.trai.ch/twin/internal/adapters/progress"
	// Register app nodes.
	_ "go.trai.ch/twin/internal/app"
)
