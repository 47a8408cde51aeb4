package fs

import (
	"bytes"
	"io"
	"os"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

// compareBufSize is the per-file buffer for byte comparison. Both files
// stream through matched buffers; neither is ever loaded fully.
const compareBufSize = 64 * 1024

var _ ports.Comparer = (*Comparer)(nil)

// Comparer implements streamed byte-for-byte file comparison.
type Comparer struct{}

// NewComparer creates a new Comparer.
func NewComparer() *Comparer {
	return &Comparer{}
}

// SameContent reports whether both files hold identical bytes. A size
// mismatch returns false before any content is read; otherwise reading
// stops at the first differing byte or short read.
func (c *Comparer) SameContent(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", a)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", b)
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fa, err := os.Open(a) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", a)
	}
	defer fa.Close() //nolint:errcheck // Best effort close in defer

	fb, err := os.Open(b) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", b)
	}
	defer fb.Close() //nolint:errcheck // Best effort close in defer

	bufA := make([]byte, compareBufSize)
	bufB := make([]byte, compareBufSize)

	for {
		nA, errA := io.ReadFull(fa, bufA)
		nB, errB := io.ReadFull(fb, bufB)

		if nA != nB {
			// A short read on one side means the file changed under us.
			return false, nil
		}
		if !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}

		doneA := errA == io.EOF || errA == io.ErrUnexpectedEOF
		doneB := errB == io.EOF || errB == io.ErrUnexpectedEOF
		switch {
		case errA != nil && !doneA:
			return false, zerr.With(zerr.Wrap(errA, domain.ErrFileCompareFailed.Error()), "path", a)
		case errB != nil && !doneB:
			return false, zerr.With(zerr.Wrap(errB, domain.ErrFileCompareFailed.Error()), "path", b)
		case doneA != doneB:
			return false, nil
		case doneA:
			return true, nil
		}
	}
}
