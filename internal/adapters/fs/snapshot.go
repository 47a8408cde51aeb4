package fs

import (
	"errors"
	iofs "io/fs"
	"os"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Snapshotter = (*Snapshotter)(nil)

// Snapshotter captures size and modification time for drift detection.
type Snapshotter struct{}

// NewSnapshotter creates a new Snapshotter.
func NewSnapshotter() *Snapshotter {
	return &Snapshotter{}
}

// Take stats the path. A missing file yields (nil, nil): the plan records
// absence explicitly rather than a zero-value sentinel.
func (s *Snapshotter) Take(path string) (*domain.Snapshot, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	return &domain.Snapshot{
		Size:    info.Size(),
		ModTime: info.ModTime().UTC(),
	}, nil
}
