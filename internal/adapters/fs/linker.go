package fs

import "go.trai.ch/twin/internal/core/ports"

// NewHardLinker returns the hard linker for the current platform, selected
// at build time. Platforms without hard link support get a linker whose
// Link always fails with domain.ErrHardLinkUnsupported.
func NewHardLinker() ports.HardLinker {
	return newPlatformLinker()
}
