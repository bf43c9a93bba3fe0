// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "cratectl/internal/adapters/logger"
	_ "cratectl/internal/adapters/manifest"
	_ "cratectl/internal/adapters/registry"
	_ "cratectl/internal/adapters/telemetry/progrock"
	_ "cratectl/internal/adapters/workspace"
	// Register app nodes.
	_ "cratectl/internal/app"
)
