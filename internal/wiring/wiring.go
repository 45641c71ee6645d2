// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/tarhses/cdeps/internal/adapters/config"
	_ "github.com/tarhses/cdeps/internal/adapters/cpp"
	_ "github.com/tarhses/cdeps/internal/adapters/fs"
	_ "github.com/tarhses/cdeps/internal/adapters/logger"
	_ "github.com/tarhses/cdeps/internal/adapters/snapshot"
	_ "github.com/tarhses/cdeps/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "github.com/tarhses/cdeps/internal/app"
	_ "github.com/tarhses/cdeps/internal/engine/mapper"
)
