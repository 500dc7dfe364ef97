package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/hoard/internal/core/domain"
)

const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (domain.Settings, error) {
			path := os.Getenv("HOARD_CONFIG")
			if path == "" {
				path = DefaultFilename
			}
			return Load(path)
		},
	})
}
