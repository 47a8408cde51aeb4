// Package app implements the application layer for twin.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"go.trai.ch/twin/internal/adapters/config"
	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/twin/internal/engine/apply"
	"go.trai.ch/twin/internal/engine/bucket"
	"go.trai.ch/twin/internal/engine/plan"
	"go.trai.ch/twin/internal/engine/resolve"
	"go.trai.ch/twin/internal/ui/style"
	"go.trai.ch/zerr"
)

// App wires the scan and apply pipelines together.
type App struct {
	enumerator   ports.Enumerator
	hasher       ports.Hasher
	comparer     ports.Comparer
	snapshotter  ports.Snapshotter
	linker       ports.HardLinker
	store        ports.PlanStore
	logger       ports.Logger
	configLoader *config.Loader
	progress     ports.Progress
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	enumerator ports.Enumerator,
	hasher ports.Hasher,
	comparer ports.Comparer,
	snapshotter ports.Snapshotter,
	linker ports.HardLinker,
	store ports.PlanStore,
	logger ports.Logger,
	configLoader *config.Loader,
) *App {
	return &App{
		enumerator:   enumerator,
		hasher:       hasher,
		comparer:     comparer,
		snapshotter:  snapshotter,
		linker:       linker,
		store:        store,
		logger:       logger,
		configLoader: configLoader,
		stdout:       os.Stdout,
	}
}

// WithOutput redirects the summary output. Used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithProgress attaches an optional progress sink.
func (a *App) WithProgress(p ports.Progress) *App {
	a.progress = p
	return a
}

// ScanOptions configure the Scan method. Zero-valued fields fall back to
// twin.yaml defaults where those exist.
type ScanOptions struct {
	Paths                  []string
	Recursive              bool
	UsePreScan             bool
	MinSizeBytes           int64
	SafeExtensions         []string
	IgnoredDirNames        []string
	IgnoredFileNames       []string
	ProgressInterval       int
	ExactMode              string
	ActionKind             string
	CanonicalByLexicalPath bool
	PlanPath               string
}

// Scan runs the full pipeline (enumerate, bucket, resolve, plan) and
// persists the resulting plan. Nothing is mutated; scan is always safe.
func (a *App) Scan(ctx context.Context, opts ScanOptions) error {
	if len(opts.Paths) == 0 {
		return domain.ErrNoPathsSpecified
	}

	defaults, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	opts = mergeDefaults(opts, defaults)

	mode, err := domain.ParseExactMode(opts.ExactMode)
	if err != nil {
		return err
	}
	kind, err := domain.ParseActionKind(opts.ActionKind)
	if err != nil {
		return err
	}

	cfg := domain.ScanConfig{
		Paths:            opts.Paths,
		Recursive:        opts.Recursive,
		UsePreScan:       opts.UsePreScan,
		MinFileSizeBytes: opts.MinSizeBytes,
		SafeExtensions:   opts.SafeExtensions,
		IgnoredDirNames:  opts.IgnoredDirNames,
		IgnoredFileNames: opts.IgnoredFileNames,
		ProgressInterval: opts.ProgressInterval,
	}

	bucketer := bucket.NewBucketer(a.enumerator, a.progress)
	buckets, err := bucketer.Buckets(ctx, cfg)
	if err != nil {
		return zerr.Wrap(err, "scan failed")
	}

	resolver := resolve.NewResolver(a.hasher, a.comparer).WithProgress(a.progress, opts.ProgressInterval)
	groups, err := resolver.Resolve(ctx, mode, buckets)
	if err != nil {
		return zerr.Wrap(err, "duplicate resolution failed")
	}

	planner := plan.NewPlanner(a.snapshotter)
	actions, err := planner.PlanActions(groups, plan.Options{
		ActionKind:             kind,
		CanonicalByLexicalPath: opts.CanonicalByLexicalPath,
	})
	if err != nil {
		return zerr.Wrap(err, "planning failed")
	}

	planPath := opts.PlanPath
	if planPath == "" {
		planPath = domain.DefaultPlanFileName
	}

	p := &domain.Plan{
		Version:   domain.PlanVersion,
		CreatedAt: time.Now().UTC(),
		Metadata:  a.metadata(opts, mode, kind),
		Actions:   actions,
	}
	if err := a.store.Save(planPath, p); err != nil {
		return err
	}

	a.printScanSummary(groups, actions, planPath)
	return nil
}

func (a *App) metadata(opts ScanOptions, mode domain.ExactMode, kind domain.ActionKind) domain.PlanMetadata {
	meta := domain.PlanMetadata{
		Paths:        opts.Paths,
		Recursive:    opts.Recursive,
		UsePreScan:   opts.UsePreScan,
		MinSizeBytes: opts.MinSizeBytes,
		ExactMode:    mode,
		ActionKind:   kind,
	}
	if host, err := os.Hostname(); err == nil {
		meta.Hostname = host
	}
	if u, err := user.Current(); err == nil {
		meta.Username = u.Username
	}
	return meta
}

func (a *App) printScanSummary(groups []domain.DuplicateGroup, actions []domain.PlannedAction, planPath string) {
	var wasted int64
	for _, g := range groups {
		wasted += g.WastedBytes()
	}

	fmt.Fprintln(a.stdout, style.Header.Render("scan complete"))
	fmt.Fprintf(a.stdout, "  duplicate groups: %d\n", len(groups))
	fmt.Fprintf(a.stdout, "  planned actions:  %d\n", len(actions))
	fmt.Fprintf(a.stdout, "  reclaimable:      %d bytes\n", wasted)
	fmt.Fprintln(a.stdout, style.Muted.Render("  plan written to "+planPath))
}

// ApplyOptions configure the Apply method. DryRun defaults to true at the
// CLI; this type carries the already-resolved value.
type ApplyOptions struct {
	PlanPath      string
	DryRun        bool
	QuarantineDir string
	AllowDelete   bool
}

// Apply loads a persisted plan and executes it. Plan load failures are
// fatal before any action is attempted.
func (a *App) Apply(ctx context.Context, opts ApplyOptions) (domain.ApplyResult, error) {
	planPath := opts.PlanPath
	if planPath == "" {
		planPath = domain.DefaultPlanFileName
	}

	p, err := a.store.Load(planPath)
	if err != nil {
		return domain.ApplyResult{}, err
	}

	if host, hostErr := os.Hostname(); hostErr == nil && p.Metadata.Hostname != "" && p.Metadata.Hostname != host {
		a.logger.Warn(fmt.Sprintf("plan was created on %q, applying on %q", p.Metadata.Hostname, host))
	}

	applier := apply.NewApplier(a.snapshotter, a.linker, a.logger)
	result, err := applier.Apply(ctx, p.Actions, apply.Options{
		DryRun:        opts.DryRun,
		QuarantineDir: opts.QuarantineDir,
		AllowDelete:   opts.AllowDelete,
	})
	if err != nil {
		return result, err
	}

	a.printApplySummary(result)
	return result, nil
}

func (a *App) printApplySummary(result domain.ApplyResult) {
	header := "apply complete"
	if result.DryRun {
		header = "apply complete (dry-run)"
	}
	fmt.Fprintln(a.stdout, style.Header.Render(header))
	fmt.Fprintf(a.stdout, "  total:   %d\n", result.Total)
	fmt.Fprintf(a.stdout, "  applied: %d\n", result.Applied)
	fmt.Fprintf(a.stdout, "  skipped: %d\n", result.Skipped)
	fmt.Fprintf(a.stdout, "  failed:  %d\n", result.Failed)
}

// mergeDefaults fills zero-valued scan options from twin.yaml.
func mergeDefaults(opts ScanOptions, defaults *config.Twinfile) ScanOptions {
	if opts.MinSizeBytes == 0 && defaults.MinSizeBytes > 0 {
		opts.MinSizeBytes = defaults.MinSizeBytes
	}
	if len(opts.SafeExtensions) == 0 {
		opts.SafeExtensions = defaults.SafeExtensions
	}
	if len(opts.IgnoredDirNames) == 0 {
		opts.IgnoredDirNames = defaults.IgnoredDirectories
	}
	if len(opts.IgnoredFileNames) == 0 {
		opts.IgnoredFileNames = defaults.IgnoredFiles
	}
	if opts.ExactMode == "" {
		opts.ExactMode = defaults.ExactMode
	}
	if opts.ExactMode == "" {
		opts.ExactMode = string(domain.ModeBinaryForPairs)
	}
	if opts.ActionKind == "" {
		opts.ActionKind = defaults.ActionKind
	}
	if opts.ActionKind == "" {
		opts.ActionKind = string(domain.ActionQuarantine)
	}
	return opts
}
