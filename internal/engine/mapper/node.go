package mapper

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tarhses/cdeps/internal/adapters/cpp"                 //nolint:depguard // Wired in engine wiring
	"github.com/tarhses/cdeps/internal/adapters/fs"                  //nolint:depguard // Wired in engine wiring
	"github.com/tarhses/cdeps/internal/adapters/logger"              //nolint:depguard // Wired in engine wiring
	"github.com/tarhses/cdeps/internal/adapters/telemetry/progrock"  //nolint:depguard // Wired in engine wiring
	"github.com/tarhses/cdeps/internal/core/ports"
)

// NodeID is the unique identifier for the mapper Graft node.
const NodeID graft.ID = "engine.mapper"

func init() {
	graft.Register(graft.Node[*Mapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cpp.NodeID,
			fs.ResolverNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Mapper, error) {
			scanner, err := graft.Dep[ports.IncludeScanner](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.IncludeResolver](ctx)
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

			return NewMapper(scanner, resolver, log, telemetry), nil
		},
	})
}
