//go:build unix || windows

package fs

import (
	"os"

	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.HardLinker = (*osLinker)(nil)

// osLinker creates hard links via the operating system's link primitive.
// os.Link maps to link(2) on Unix and CreateHardLinkW on Windows.
type osLinker struct{}

func newPlatformLinker() ports.HardLinker {
	return &osLinker{}
}

// Link creates newname as a hard link to existing.
func (l *osLinker) Link(existing, newname string) error {
	if err := os.Link(existing, newname); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create hard link"), "path", newname)
	}
	return nil
}
