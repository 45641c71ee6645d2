package cpp

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/tarhses/cdeps/internal/core/ports"
)

const NodeID graft.ID = "adapter.cpp.scanner"

func init() {
	graft.Register(graft.Node[ports.IncludeScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IncludeScanner, error) {
			return NewScanner(), nil
		},
	})
}
