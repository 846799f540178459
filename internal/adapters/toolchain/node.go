package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xtask/internal/adapters/logger"
	"go.trai.ch/xtask/internal/core/ports"
)

// NodeID is the unique identifier for the invoker factory Graft node.
const NodeID graft.ID = "adapter.toolchain"

func init() {
	graft.Register(graft.Node[ports.InvokerFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.InvokerFactory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
