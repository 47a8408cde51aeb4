package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/twin/internal/adapters/config"
	"go.trai.ch/twin/internal/core/domain"
)

const sampleTwinfile = `minSizeBytes: 4096
safeExtensions:
  - .jpg
  - .png
ignoredDirectories:
  - .git
ignoredFiles:
  - Thumbs.db
exactMode: hash-verify
actionKind: hardlink
quarantineDir: /tmp/quarantine
`

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("parses a full file", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.TwinFileName), []byte(sampleTwinfile), domain.FilePerm))

		file, err := config.NewLoader().Load(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, int64(4096), file.MinSizeBytes)
		assert.Equal(t, []string{".jpg", ".png"}, file.SafeExtensions)
		assert.Equal(t, []string{".git"}, file.IgnoredDirectories)
		assert.Equal(t, []string{"Thumbs.db"}, file.IgnoredFiles)
		assert.Equal(t, "hash-verify", file.ExactMode)
		assert.Equal(t, "hardlink", file.ActionKind)
		assert.Equal(t, "/tmp/quarantine", file.QuarantineDir)
	})

	t.Run("missing file yields empty defaults", func(t *testing.T) {
		t.Parallel()
		file, err := config.NewLoader().Load(t.TempDir())

		require.NoError(t, err)
		require.NotNil(t, file)
		assert.Equal(t, &config.Twinfile{}, file)
	})

	t.Run("walks up to a parent directory", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		nested := filepath.Join(tmpDir, "a", "b")
		require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.TwinFileName), []byte("minSizeBytes: 99\n"), domain.FilePerm))

		file, err := config.NewLoader().Load(nested)

		require.NoError(t, err)
		assert.Equal(t, int64(99), file.MinSizeBytes)
	})

	t.Run("nearest file wins", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		nested := filepath.Join(tmpDir, "sub")
		require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.TwinFileName), []byte("minSizeBytes: 1\n"), domain.FilePerm))
		require.NoError(t, os.WriteFile(filepath.Join(nested, domain.TwinFileName), []byte("minSizeBytes: 2\n"), domain.FilePerm))

		file, err := config.NewLoader().Load(nested)

		require.NoError(t, err)
		assert.Equal(t, int64(2), file.MinSizeBytes)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()
		tmpDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.TwinFileName), []byte("minSizeBytes: [broken"), domain.FilePerm))

		_, err := config.NewLoader().Load(tmpDir)

		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}
