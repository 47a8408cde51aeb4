package fs_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/twin/internal/adapters/fs"
	"go.trai.ch/twin/internal/core/domain"
)

func TestComparer_SameContent(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	comparer := fs.NewComparer()

	t.Run("identical files", func(t *testing.T) {
		t.Parallel()
		fileA := filepath.Join(tmpDir, "a.bin")
		fileB := filepath.Join(tmpDir, "b.bin")
		writeFile(t, fileA, "the same bytes")
		writeFile(t, fileB, "the same bytes")

		same, err := comparer.SameContent(fileA, fileB)

		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("last byte differs", func(t *testing.T) {
		t.Parallel()
		// Large enough to span multiple read buffers, differing only
		// at the very end.
		body := bytes.Repeat([]byte{0x42}, 200*1024)
		fileA := filepath.Join(tmpDir, "big_a.bin")
		fileB := filepath.Join(tmpDir, "big_b.bin")
		writeFile(t, fileA, string(body)+"x")
		writeFile(t, fileB, string(body)+"y")

		same, err := comparer.SameContent(fileA, fileB)

		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("size mismatch short-circuits", func(t *testing.T) {
		t.Parallel()
		fileA := filepath.Join(tmpDir, "short.bin")
		fileB := filepath.Join(tmpDir, "long.bin")
		writeFile(t, fileA, "abc")
		writeFile(t, fileB, "abcd")

		same, err := comparer.SameContent(fileA, fileB)

		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("empty files match", func(t *testing.T) {
		t.Parallel()
		fileA := filepath.Join(tmpDir, "empty_a.bin")
		fileB := filepath.Join(tmpDir, "empty_b.bin")
		writeFile(t, fileA, "")
		writeFile(t, fileB, "")

		same, err := comparer.SameContent(fileA, fileB)

		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		fileA := filepath.Join(tmpDir, "present.bin")
		writeFile(t, fileA, "abc")

		_, err := comparer.SameContent(fileA, filepath.Join(tmpDir, "absent.bin"))

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
	})
}
