package ports

import "go.trai.ch/twin/internal/core/domain"

// Snapshotter captures the point-in-time state of a file for drift detection.
//
//go:generate mockgen -source=snapshotter.go -destination=mocks/mock_snapshotter.go -package=mocks
type Snapshotter interface {
	// Take stats the path and returns its snapshot. A missing file yields
	// (nil, nil): absence is a recorded fact, not an error.
	Take(path string) (*domain.Snapshot, error)
}
