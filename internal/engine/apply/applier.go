// Package apply executes planned actions against the live filesystem.
package apply

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configure one Apply call. DryRun defaults to true everywhere a
// destructive action could occur; mutation requires explicit opt-in.
type Options struct {
	DryRun        bool
	QuarantineDir string
	AllowDelete   bool
}

// outcome is the terminal state of one action: Pending goes to exactly one
// of Applied, Skipped or Failed.
type outcome int

const (
	outcomeApplied outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Applier processes planned actions independently and in order, drift-
// checking each against its recorded snapshots before mutating anything.
type Applier struct {
	snapshotter ports.Snapshotter
	linker      ports.HardLinker
	logger      ports.Logger
}

// NewApplier creates an Applier.
func NewApplier(snapshotter ports.Snapshotter, linker ports.HardLinker, logger ports.Logger) *Applier {
	return &Applier{snapshotter: snapshotter, linker: linker, logger: logger}
}

// Apply runs every action and tallies the outcomes. Configuration errors
// (quarantine action without a quarantine directory, delete without
// AllowDelete) are fatal to the whole run and detected before any action
// executes. Per-action failures never abort the batch.
func (a *Applier) Apply(ctx context.Context, actions []domain.PlannedAction, opts Options) (domain.ApplyResult, error) {
	result := domain.ApplyResult{Total: len(actions), DryRun: opts.DryRun}

	if err := a.checkConfiguration(actions, opts); err != nil {
		return result, err
	}

	for _, action := range actions {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		switch a.applyOne(action, opts) {
		case outcomeApplied:
			result.Applied++
		case outcomeSkipped:
			result.Skipped++
		case outcomeFailed:
			result.Failed++
		}
	}

	return result, nil
}

// checkConfiguration surfaces configuration errors before the first mutation.
func (a *Applier) checkConfiguration(actions []domain.PlannedAction, opts Options) error {
	for _, action := range actions {
		switch action.Kind {
		case domain.ActionQuarantine:
			if opts.QuarantineDir == "" {
				return domain.ErrQuarantineDirRequired
			}
		case domain.ActionDelete:
			if !opts.AllowDelete {
				return domain.ErrDeleteNotAllowed
			}
		case domain.ActionHardlink:
			// Existence is re-checked per action at execution time.
		default:
			return zerr.With(domain.ErrUnknownActionKind, "kind", string(action.Kind))
		}
	}
	return nil
}

func (a *Applier) applyOne(action domain.PlannedAction, opts Options) outcome {
	if action.HasSnapshots() {
		if reason := a.drift(action); reason != "" {
			a.logger.Info(fmt.Sprintf("skip %s %s: %s", action.Kind, action.TargetPath, reason))
			return outcomeSkipped
		}
	}

	if opts.DryRun {
		a.logger.Info(fmt.Sprintf("dry-run %s %s (canonical %s)", action.Kind, action.TargetPath, action.CanonicalPath))
		return outcomeSkipped
	}

	if err := a.execute(action, opts); err != nil {
		a.logger.Error(zerr.With(zerr.With(zerr.Wrap(err, "action failed"), "kind", string(action.Kind)), "target", action.TargetPath))
		return outcomeFailed
	}

	a.logger.Info(fmt.Sprintf("%s %s", action.Kind, action.TargetPath))
	return outcomeApplied
}

// drift compares the current state of both files against the snapshots
// recorded at planning time. Absence or a changed size or mtime on either
// side is drift. Drift is a Skipped outcome, never a failure, and nothing
// is mutated. Actions carrying no snapshots at all never reach here; that
// is the compatibility carve-out for legacy plans.
func (a *Applier) drift(action domain.PlannedAction) string {
	if reason := a.driftOne("target", action.TargetPath, action.TargetSnapshot); reason != "" {
		return reason
	}
	return a.driftOne("canonical", action.CanonicalPath, action.CanonicalSnapshot)
}

func (a *Applier) driftOne(role, path string, recorded *domain.Snapshot) string {
	current, err := a.snapshotter.Take(path)
	if err != nil {
		return role + " not statable"
	}

	switch {
	case recorded == nil && current == nil:
		return ""
	case recorded == nil:
		// Absent at planning, present now. The plan no longer describes
		// this file.
		return role + " appeared"
	case current == nil:
		return role + " missing"
	case current.Size != recorded.Size:
		return role + " size changed"
	case !current.ModTime.Equal(recorded.ModTime):
		return role + " mtime changed"
	default:
		return ""
	}
}

func (a *Applier) execute(action domain.PlannedAction, opts Options) error {
	switch action.Kind {
	case domain.ActionQuarantine:
		return a.quarantine(action.TargetPath, opts.QuarantineDir)
	case domain.ActionDelete:
		return a.delete(action.TargetPath)
	case domain.ActionHardlink:
		return a.hardlink(action.CanonicalPath, action.TargetPath)
	default:
		return zerr.With(domain.ErrUnknownActionKind, "kind", string(action.Kind))
	}
}

// quarantine moves the target into the quarantine directory, resolving
// name collisions with a numeric suffix before the extension. It never
// overwrites an existing file.
func (a *Applier) quarantine(target, quarantineDir string) error {
	if err := os.MkdirAll(quarantineDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create quarantine directory")
	}

	dest := filepath.Join(quarantineDir, filepath.Base(target))
	for n := 1; exists(dest); n++ {
		dest = filepath.Join(quarantineDir, suffixed(filepath.Base(target), n))
	}

	if err := os.Rename(target, dest); err != nil {
		return zerr.Wrap(err, "failed to move file to quarantine")
	}
	return nil
}

func (a *Applier) delete(target string) error {
	if err := os.Remove(target); err != nil {
		return zerr.Wrap(err, "failed to delete file")
	}
	return nil
}

// hardlink removes the target and links it to the canonical file's data.
// The removal happens before the link succeeds, so a link failure leaves
// the target gone; the loud Failed outcome is deliberate.
// TODO: link to a temp name next to the target and rename over it, closing
// the data-loss window on platforms where rename replaces existing files.
func (a *Applier) hardlink(canonical, target string) error {
	if !exists(canonical) {
		return zerr.With(zerr.Wrap(iofs.ErrNotExist, "canonical file missing"), "path", canonical)
	}
	if !exists(target) {
		return zerr.With(zerr.Wrap(iofs.ErrNotExist, "target file missing"), "path", target)
	}

	if err := os.Remove(target); err != nil {
		return zerr.Wrap(err, "failed to remove target before linking")
	}

	if err := a.linker.Link(canonical, target); err != nil {
		// The original target is already gone. Surface this loudly.
		a.logger.Warn(fmt.Sprintf("hard link failed after removing %s; original data lost", target))
		return err
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, iofs.ErrNotExist)
}

// suffixed inserts a numeric suffix before the extension:
// "photo.jpg" -> "photo.1.jpg", "README" -> "README.1".
func suffixed(name string, n int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s.%d%s", stem, n, ext)
}
