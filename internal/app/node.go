package app

import (
	"context"

	"cratectl/internal/adapters/logger"   //nolint:depguard // wired in app layer
	"cratectl/internal/adapters/manifest" //nolint:depguard // wired in app layer
	"cratectl/internal/adapters/registry" //nolint:depguard // wired in app layer
	progrocktelemetry "cratectl/internal/adapters/telemetry/progrock" //nolint:depguard // wired in app layer
	"cratectl/internal/adapters/workspace" //nolint:depguard // wired in app layer
	"cratectl/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.NodeID,
			manifest.NodeID,
			registry.NodeID,
			progrocktelemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			ws, err := graft.Dep[ports.WorkspaceLoader](ctx)
			if err != nil {
				return nil, err
			}
			editor, err := graft.Dep[ports.ManifestEditor](ctx)
			if err != nil {
				return nil, err
			}
			versions, err := graft.Dep[ports.VersionResolver](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(ws, editor, versions, telemetry, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

// Components contains the initialized application components the CLI layer
// needs.
type Components struct {
	App    *App
	Logger ports.Logger
}
