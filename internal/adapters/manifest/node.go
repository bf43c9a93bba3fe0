package manifest

import (
	"context"

	"cratectl/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the manifest editor Graft node.
const NodeID graft.ID = "adapter.manifest_editor"

func init() {
	graft.Register(graft.Node[ports.ManifestEditor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestEditor, error) {
			return NewEditor(), nil
		},
	})
}
