package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/twin/internal/core/ports"
)

const (
	// EnumeratorNodeID is the unique identifier for the enumerator Graft node.
	EnumeratorNodeID graft.ID = "adapter.enumerator"
	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.hasher"
	// ComparerNodeID is the unique identifier for the comparer Graft node.
	ComparerNodeID graft.ID = "adapter.comparer"
	// SnapshotterNodeID is the unique identifier for the snapshotter Graft node.
	SnapshotterNodeID graft.ID = "adapter.snapshotter"
	// LinkerNodeID is the unique identifier for the hard linker Graft node.
	LinkerNodeID graft.ID = "adapter.linker"
)

func init() {
	graft.Register(graft.Node[ports.Enumerator]{
		ID:        EnumeratorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Enumerator, error) {
			return NewEnumerator(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Comparer]{
		ID:        ComparerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Comparer, error) {
			return NewComparer(), nil
		},
	})

	graft.Register(graft.Node[ports.Snapshotter]{
		ID:        SnapshotterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Snapshotter, error) {
			return NewSnapshotter(), nil
		},
	})

	graft.Register(graft.Node[ports.HardLinker]{
		ID:        LinkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HardLinker, error) {
			return NewHardLinker(), nil
		},
	})
}
