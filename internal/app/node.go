package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wafer/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wafer/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/wafer/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/wafer/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/wafer/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ProfileLoader](ctx)
			if err != nil {
				return nil, err
			}

			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, invoker, log, tracer), nil
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
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}
