package ports

// HardLinker creates hard links through the platform's native primitive.
// Platforms without support return domain.ErrHardLinkUnsupported.
//
//go:generate mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type HardLinker interface {
	// Link creates newname as a hard link to the data of existing.
	Link(existing, newname string) error
}
