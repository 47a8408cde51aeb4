package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// digestBufSize is the streaming buffer for full content digests.
	// Memory use is O(digestBufSize) regardless of file size.
	digestBufSize = 128 * 1024

	// quickDigestLen is how many leading bytes the quick digest covers.
	quickDigestLen = 64 * 1024
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes streaming content digests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ContentDigest computes the SHA-256 of the file's full content.
func (h *Hasher) ContentDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha256.New()
	buf := make([]byte, digestBufSize)
	if _, err := io.CopyBuffer(hasher, f, buf); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// QuickDigest computes the XXHash of the file's first 64 KiB. Files with
// identical content always share it, so it can only split buckets apart,
// never merge them.
func (h *Hasher) QuickDigest(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, io.LimitReader(f, quickDigestLen)); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}

	return hasher.Sum64(), nil
}
