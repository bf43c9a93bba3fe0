package registry

import (
	"context"

	"cratectl/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the version resolver Graft node.
const NodeID graft.ID = "adapter.version_resolver"

func init() {
	graft.Register(graft.Node[ports.VersionResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.VersionResolver, error) {
			registries, err := LoadRegistries("")
			if err != nil {
				return nil, err
			}
			return NewResolver(registries), nil
		},
	})
}
