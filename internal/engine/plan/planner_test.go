package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/twin/internal/adapters/fs"
	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/engine/plan"
)

func writeFile(t *testing.T, dir, name, content string) domain.FileEntry {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return domain.NewFileEntry(path, int64(len(content)))
}

func TestPlanner_OneActionPerNonCanonicalMember(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.txt", "body")
	b := writeFile(t, tmpDir, "b.txt", "body")
	c := writeFile(t, tmpDir, "c.txt", "body")

	planner := plan.NewPlanner(fs.NewSnapshotter())
	actions, err := planner.PlanActions(
		[]domain.DuplicateGroup{{Size: a.Size, Members: []domain.FileEntry{a, b, c}}},
		plan.Options{ActionKind: domain.ActionQuarantine, CanonicalByLexicalPath: true},
	)

	require.NoError(t, err)
	require.Len(t, actions, 2)

	for _, action := range actions {
		assert.Equal(t, domain.ActionQuarantine, action.Kind)
		assert.Equal(t, a.Path, action.CanonicalPath)
		assert.NotEqual(t, action.CanonicalPath, action.TargetPath)
		assert.Equal(t, a.Size, action.GroupSize)
		require.NotNil(t, action.CanonicalSnapshot)
		require.NotNil(t, action.TargetSnapshot)
		assert.Equal(t, a.Size, action.TargetSnapshot.Size)
	}
	assert.Equal(t, b.Path, actions[0].TargetPath)
	assert.Equal(t, c.Path, actions[1].TargetPath)
}

func TestPlanner_CanonicalIsLexicallySmallest(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	z := writeFile(t, tmpDir, "zebra.txt", "body")
	upper := writeFile(t, tmpDir, "Apple.txt", "body")
	m := writeFile(t, tmpDir, "mango.txt", "body")

	planner := plan.NewPlanner(fs.NewSnapshotter())
	actions, err := planner.PlanActions(
		[]domain.DuplicateGroup{{Size: z.Size, Members: []domain.FileEntry{z, upper, m}}},
		plan.Options{ActionKind: domain.ActionDelete, CanonicalByLexicalPath: true},
	)

	require.NoError(t, err)
	require.Len(t, actions, 2)
	// Case-insensitive comparison: "Apple.txt" sorts before "mango.txt".
	assert.Equal(t, upper.Path, actions[0].CanonicalPath)
	assert.Equal(t, m.Path, actions[0].TargetPath)
	assert.Equal(t, z.Path, actions[1].TargetPath)
}

func TestPlanner_InsertionOrderWithoutLexical(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	z := writeFile(t, tmpDir, "zebra.txt", "body")
	a := writeFile(t, tmpDir, "apple.txt", "body")

	planner := plan.NewPlanner(fs.NewSnapshotter())
	actions, err := planner.PlanActions(
		[]domain.DuplicateGroup{{Size: z.Size, Members: []domain.FileEntry{z, a}}},
		plan.Options{ActionKind: domain.ActionHardlink},
	)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, z.Path, actions[0].CanonicalPath)
	assert.Equal(t, a.Path, actions[0].TargetPath)
}

func TestPlanner_VanishedFileGetsNilSnapshot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.txt", "body")
	gone := domain.NewFileEntry(filepath.Join(tmpDir, "gone.txt"), a.Size)

	planner := plan.NewPlanner(fs.NewSnapshotter())
	actions, err := planner.PlanActions(
		[]domain.DuplicateGroup{{Size: a.Size, Members: []domain.FileEntry{a, gone}}},
		plan.Options{ActionKind: domain.ActionQuarantine, CanonicalByLexicalPath: true},
	)

	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.NotNil(t, actions[0].CanonicalSnapshot)
	assert.Nil(t, actions[0].TargetSnapshot)
	assert.True(t, actions[0].HasSnapshots())
}

func TestPlanner_SkipsUndersizedGroups(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	a := writeFile(t, tmpDir, "a.txt", "body")

	planner := plan.NewPlanner(fs.NewSnapshotter())
	actions, err := planner.PlanActions(
		[]domain.DuplicateGroup{{Size: a.Size, Members: []domain.FileEntry{a}}},
		plan.Options{ActionKind: domain.ActionQuarantine},
	)

	require.NoError(t, err)
	assert.Empty(t, actions)
}
