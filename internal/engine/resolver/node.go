package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoard/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoard/internal/adapters/globaldir" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoard/internal/adapters/localdir"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoard/internal/adapters/lockfile"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/hoard/internal/core/domain"
	"go.trai.ch/hoard/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			localdir.NodeID,
			globaldir.NodeID,
			lockfile.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			settings, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[ports.LocalProvider](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.GlobalStore](ctx)
			if err != nil {
				return nil, err
			}

			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(provider, store, locker, settings), nil
		},
	})
}
