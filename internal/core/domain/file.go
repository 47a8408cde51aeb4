// Package domain contains the core value objects for duplicate resolution.
package domain

// FileCandidate is a file discovered during enumeration, before any
// content inspection has happened.
type FileCandidate struct {
	Path string
	Size int64
}

// FileEntry is a candidate with an optional content digest attached.
// Entries are value objects: attaching a digest produces a new entry,
// earlier holders keep the undigested view.
type FileEntry struct {
	Path   string
	Size   int64
	Digest string
}

// NewFileEntry creates an entry without a digest.
func NewFileEntry(path string, size int64) FileEntry {
	return FileEntry{Path: path, Size: size}
}

// WithDigest returns a copy of the entry carrying the given content digest.
func (e FileEntry) WithDigest(digest string) FileEntry {
	e.Digest = digest
	return e
}

// HasDigest reports whether a content digest has been computed for the entry.
func (e FileEntry) HasDigest() bool {
	return e.Digest != ""
}

// DuplicateGroup is a set of files confirmed to have byte-identical content.
// All members share Size and there are always at least two of them; groups
// that collapse to a single member are discarded, never emitted.
type DuplicateGroup struct {
	Size    int64
	Members []FileEntry
}

// WastedBytes returns the bytes reclaimable by keeping a single member.
func (g DuplicateGroup) WastedBytes() int64 {
	if len(g.Members) < 2 {
		return 0
	}
	return g.Size * int64(len(g.Members)-1)
}
