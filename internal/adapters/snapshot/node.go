package snapshot

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tarhses/cdeps/internal/adapters/config"
	"github.com/tarhses/cdeps/internal/core/ports"
)

const NodeID graft.ID = "adapter.snapshot_store"

func init() {
	graft.Register(graft.Node[ports.SnapshotStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SnapshotStore, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := loader.Load(".")
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.SnapshotPath), nil
		},
	})
}
