package app

import (
	"context"

	"github.com/grindlemire/graft"
	configadapter "go.trai.ch/twin/internal/adapters/config"
	"go.trai.ch/twin/internal/adapters/fs"
	"go.trai.ch/twin/internal/adapters/logger"
	"go.trai.ch/twin/internal/adapters/planstore"
	progressadapter "go.trai.ch/twin/internal/adapters/progress"
	"go.trai.ch/twin/internal/core/ports"
)

// Components bundles everything main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.EnumeratorNodeID,
			fs.HasherNodeID,
			fs.ComparerNodeID,
			fs.SnapshotterNodeID,
			fs.LinkerNodeID,
			planstore.NodeID,
			logger.NodeID,
			configadapter.NodeID,
			progressadapter.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			enumerator, err := graft.Dep[ports.Enumerator](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			comparer, err := graft.Dep[ports.Comparer](ctx)
			if err != nil {
				return nil, err
			}
			snapshotter, err := graft.Dep[ports.Snapshotter](ctx)
			if err != nil {
				return nil, err
			}
			linker, err := graft.Dep[ports.HardLinker](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.PlanStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[*configadapter.Loader](ctx)
			if err != nil {
				return nil, err
			}
			reporter, err := graft.Dep[ports.Progress](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(enumerator, hasher, comparer, snapshotter, linker, store, log, loader).WithProgress(reporter),
				Logger: log,
			}, nil
		},
	})
}
