// Package fs provides filesystem adapters: candidate enumeration, content
// digests, byte comparison, snapshots and hard link creation.
package fs

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Enumerator = (*Enumerator)(nil)

// Enumerator walks the configured roots and yields filtered candidates.
type Enumerator struct{}

// NewEnumerator creates a new Enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// Enumerate yields one FileCandidate per file that passes the filters.
//
// Traversal is depth-first over an explicit stack so arbitrarily deep
// trees cannot exhaust call depth. Directories that cannot be read are
// skipped silently: a permission error on one subtree must not abort the
// whole scan. This is the only place I/O errors are swallowed.
func (e *Enumerator) Enumerate(ctx context.Context, cfg domain.ScanConfig) iter.Seq2[domain.FileCandidate, error] {
	filter := newFilter(cfg)

	return func(yield func(domain.FileCandidate, error) bool) {
		var stack []string

		for _, root := range cfg.Paths {
			info, err := os.Stat(root)
			if err != nil {
				yield(domain.FileCandidate{}, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", root))
				return
			}

			if !info.IsDir() {
				if filter.keepFile(root, info.Size()) {
					if !yield(domain.FileCandidate{Path: root, Size: info.Size()}, nil) {
						return
					}
				}
				continue
			}

			stack = append(stack, root)
		}

		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if err := ctx.Err(); err != nil {
				yield(domain.FileCandidate{}, err)
				return
			}

			entries, err := os.ReadDir(dir)
			if err != nil {
				// Unreadable directory: skip the subtree, keep scanning.
				continue
			}

			for _, entry := range entries {
				if entry.IsDir() {
					if cfg.Recursive && !filter.ignoredDir(entry.Name()) {
						stack = append(stack, filepath.Join(dir, entry.Name()))
					}
					continue
				}
				if !entry.Type().IsRegular() {
					continue
				}

				info, err := entry.Info()
				if err != nil {
					// The file vanished between ReadDir and stat. Losing a
					// racing file is the accepted enumeration race.
					continue
				}

				path := filepath.Join(dir, entry.Name())
				if !filter.keepFile(path, info.Size()) {
					continue
				}
				if !yield(domain.FileCandidate{Path: path, Size: info.Size()}, nil) {
					return
				}
			}
		}
	}
}

// filter holds the pre-lowered filter sets for one enumeration pass.
type filter struct {
	minSize      int64
	extensions   map[string]struct{}
	ignoredDirs  map[string]struct{}
	ignoredFiles map[string]struct{}
}

func newFilter(cfg domain.ScanConfig) *filter {
	return &filter{
		minSize:      cfg.MinFileSizeBytes,
		extensions:   lowerSet(cfg.SafeExtensions),
		ignoredDirs:  lowerSet(cfg.IgnoredDirNames),
		ignoredFiles: lowerSet(cfg.IgnoredFileNames),
	}
}

func lowerSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = struct{}{}
	}
	return set
}

func (f *filter) ignoredDir(name string) bool {
	_, ok := f.ignoredDirs[strings.ToLower(name)]
	return ok
}

func (f *filter) keepFile(path string, size int64) bool {
	if size < f.minSize {
		return false
	}
	name := strings.ToLower(filepath.Base(path))
	if _, ok := f.ignoredFiles[name]; ok {
		return false
	}
	if f.extensions != nil {
		if _, ok := f.extensions[strings.ToLower(filepath.Ext(path))]; !ok {
			return false
		}
	}
	return true
}
