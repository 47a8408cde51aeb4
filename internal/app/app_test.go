package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/twin/internal/adapters/config"
	"go.trai.ch/twin/internal/adapters/fs"
	"go.trai.ch/twin/internal/adapters/logger"
	"go.trai.ch/twin/internal/adapters/planstore"
	"go.trai.ch/twin/internal/app"
	"go.trai.ch/twin/internal/core/domain"
)

// newApp wires the real adapters against a scratch working directory so
// the config loader cannot pick up a stray twin.yaml from the repo.
func newApp(t *testing.T) (*app.App, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())

	lg := logger.New()
	lg.SetOutput(&bytes.Buffer{})

	out := &bytes.Buffer{}
	application := app.New(
		fs.NewEnumerator(),
		fs.NewHasher(),
		fs.NewComparer(),
		fs.NewSnapshotter(),
		fs.NewHardLinker(),
		planstore.NewStore(),
		lg,
		config.NewLoader(),
	).WithOutput(out)
	return application, out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestApp_ScanProducesPlan(t *testing.T) {
	application, out := newApp(t)

	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "a.txt"), "duplicate body")
	writeFile(t, filepath.Join(dataDir, "b.txt"), "duplicate body")
	writeFile(t, filepath.Join(dataDir, "c.txt"), "different body")

	planPath := filepath.Join(t.TempDir(), "twin.plan.json")
	err := application.Scan(context.Background(), app.ScanOptions{
		Paths:                  []string{dataDir},
		Recursive:              true,
		CanonicalByLexicalPath: true,
		PlanPath:               planPath,
	})
	require.NoError(t, err)

	loaded, err := planstore.NewStore().Load(planPath)
	require.NoError(t, err)
	assert.Equal(t, domain.PlanVersion, loaded.Version)
	assert.Equal(t, domain.ModeBinaryForPairs, loaded.Metadata.ExactMode)
	assert.Equal(t, domain.ActionQuarantine, loaded.Metadata.ActionKind)
	require.Len(t, loaded.Actions, 1)
	assert.Equal(t, filepath.Join(dataDir, "a.txt"), loaded.Actions[0].CanonicalPath)
	assert.Equal(t, filepath.Join(dataDir, "b.txt"), loaded.Actions[0].TargetPath)
	require.NotNil(t, loaded.Actions[0].TargetSnapshot)

	summary := out.String()
	assert.Contains(t, summary, "scan complete")
	assert.Contains(t, summary, "duplicate groups: 1")
	assert.Contains(t, summary, planPath)
}

func TestApp_ScanRequiresPaths(t *testing.T) {
	application, _ := newApp(t)

	err := application.Scan(context.Background(), app.ScanOptions{})

	assert.ErrorIs(t, err, domain.ErrNoPathsSpecified)
}

func TestApp_ScanRejectsUnknownMode(t *testing.T) {
	application, _ := newApp(t)

	err := application.Scan(context.Background(), app.ScanOptions{
		Paths:     []string{t.TempDir()},
		ExactMode: "fuzzy",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownExactMode.Error())
}

func TestApp_ScanUsesTwinfileDefaults(t *testing.T) {
	application, _ := newApp(t)

	// The working directory was swapped by newApp; drop defaults there.
	require.NoError(t, os.WriteFile("twin.yaml", []byte("actionKind: hardlink\nexactMode: hash-only\n"), domain.FilePerm))

	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "a.txt"), "body")
	writeFile(t, filepath.Join(dataDir, "b.txt"), "body")

	planPath := filepath.Join(t.TempDir(), "twin.plan.json")
	err := application.Scan(context.Background(), app.ScanOptions{
		Paths:    []string{dataDir},
		PlanPath: planPath,
	})
	require.NoError(t, err)

	loaded, err := planstore.NewStore().Load(planPath)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeHashOnly, loaded.Metadata.ExactMode)
	assert.Equal(t, domain.ActionHardlink, loaded.Metadata.ActionKind)
}

func TestApp_ApplyRoundTrip(t *testing.T) {
	application, out := newApp(t)

	dataDir := t.TempDir()
	writeFile(t, filepath.Join(dataDir, "a.txt"), "duplicate body")
	writeFile(t, filepath.Join(dataDir, "b.txt"), "duplicate body")

	planPath := filepath.Join(t.TempDir(), "twin.plan.json")
	require.NoError(t, application.Scan(context.Background(), app.ScanOptions{
		Paths:                  []string{dataDir},
		Recursive:              true,
		CanonicalByLexicalPath: true,
		PlanPath:               planPath,
	}))

	t.Run("dry-run mutates nothing", func(t *testing.T) {
		result, err := application.Apply(context.Background(), app.ApplyOptions{
			PlanPath:      planPath,
			DryRun:        true,
			QuarantineDir: filepath.Join(dataDir, "quarantine"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplyResult{Total: 1, Skipped: 1, DryRun: true}, result)
		assert.FileExists(t, filepath.Join(dataDir, "b.txt"))
	})

	t.Run("real run quarantines the duplicate", func(t *testing.T) {
		quarantineDir := filepath.Join(dataDir, "quarantine")
		result, err := application.Apply(context.Background(), app.ApplyOptions{
			PlanPath:      planPath,
			QuarantineDir: quarantineDir,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Applied)
		assert.NoFileExists(t, filepath.Join(dataDir, "b.txt"))
		assert.FileExists(t, filepath.Join(quarantineDir, "b.txt"))
		assert.Contains(t, out.String(), "apply complete")
	})

	t.Run("re-apply skips everything", func(t *testing.T) {
		result, err := application.Apply(context.Background(), app.ApplyOptions{
			PlanPath:      planPath,
			QuarantineDir: filepath.Join(dataDir, "quarantine"),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.ApplyResult{Total: 1, Skipped: 1}, result)
	})
}

func TestApp_ApplyMissingPlanIsFatal(t *testing.T) {
	application, _ := newApp(t)

	_, err := application.Apply(context.Background(), app.ApplyOptions{
		PlanPath: filepath.Join(t.TempDir(), "absent.plan.json"),
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPlanReadFailed.Error())
}
