//go:build !unix && !windows

package fs

import (
	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
)

var _ ports.HardLinker = (*unsupportedLinker)(nil)

// unsupportedLinker is selected on platforms without a hard link primitive.
type unsupportedLinker struct{}

func newPlatformLinker() ports.HardLinker {
	return &unsupportedLinker{}
}

// Link always fails with a clear, stable error.
func (l *unsupportedLinker) Link(_, _ string) error {
	return domain.ErrHardLinkUnsupported
}
