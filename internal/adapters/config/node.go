package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wafer/internal/adapters/logger"
	"go.trai.ch/wafer/internal/core/ports"
)

// NodeID is the unique identifier for the profile loader Graft node.
const NodeID graft.ID = "adapter.profile_loader"

func init() {
	graft.Register(graft.Node[ports.ProfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProfileLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
