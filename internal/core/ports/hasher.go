package ports

// Hasher computes content digests of files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ContentDigest streams the whole file through a fixed-size buffer and
	// returns a collision-resistant digest of its content, hex encoded.
	ContentDigest(path string) (string, error)

	// QuickDigest returns a fast, non-cryptographic digest of the file's
	// leading bytes. It is only usable to split candidates apart cheaply:
	// equal content implies equal quick digests, never the reverse.
	QuickDigest(path string) (uint64, error)
}

// Comparer decides byte-for-byte content equality.
type Comparer interface {
	// SameContent streams both files through matched buffers and returns
	// true iff their content is identical. It returns false without
	// reading when the sizes differ and stops at the first differing byte.
	SameContent(a, b string) (bool, error)
}
