package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tarhses/cdeps/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/tarhses/cdeps/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/tarhses/cdeps/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/tarhses/cdeps/internal/adapters/snapshot"           //nolint:depguard // Wired in app layer
	"github.com/tarhses/cdeps/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/tarhses/cdeps/internal/core/ports"
	"github.com/tarhses/cdeps/internal/engine/mapper"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			snapshot.NodeID,
			mapper.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	collector, err := graft.Dep[ports.Collector](ctx)
	if err != nil {
		return nil, err
	}

	m, err := graft.Dep[*mapper.Mapper](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, collector, m, hasher, store, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
