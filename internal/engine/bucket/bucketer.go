// Package bucket groups scan candidates by exact byte size.
package bucket

import (
	"context"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
)

// Bucketer consumes the enumerator and produces size buckets containing
// only sizes with two or more members.
type Bucketer struct {
	enumerator ports.Enumerator
	progress   ports.Progress
}

// NewBucketer creates a Bucketer. progress may be nil.
func NewBucketer(enumerator ports.Enumerator, progress ports.Progress) *Bucketer {
	return &Bucketer{enumerator: enumerator, progress: progress}
}

// Buckets returns size -> entries for every size occurring at least twice.
//
// With cfg.UsePreScan a counting pass runs first and only sizes with
// count > 1 are materialized on the second pass; this trades one extra
// directory walk for not retaining unique-sized files. The two passes are
// not reconciled: a file appearing or vanishing in between is an accepted
// race, not an error.
func (b *Bucketer) Buckets(ctx context.Context, cfg domain.ScanConfig) (map[int64][]domain.FileEntry, error) {
	if cfg.UsePreScan {
		return b.twoPass(ctx, cfg)
	}
	return b.singlePass(ctx, cfg)
}

func (b *Bucketer) singlePass(ctx context.Context, cfg domain.ScanConfig) (map[int64][]domain.FileEntry, error) {
	buckets := make(map[int64][]domain.FileEntry)
	tick := newTicker(b.progress, ports.PhaseScan, cfg.ProgressInterval)

	for candidate, err := range b.enumerator.Enumerate(ctx, cfg) {
		if err != nil {
			return nil, err
		}
		buckets[candidate.Size] = append(buckets[candidate.Size], domain.NewFileEntry(candidate.Path, candidate.Size))
		tick.advance(candidate.Size)
	}

	for size, entries := range buckets {
		if len(entries) < 2 {
			delete(buckets, size)
		}
	}
	return buckets, nil
}

func (b *Bucketer) twoPass(ctx context.Context, cfg domain.ScanConfig) (map[int64][]domain.FileEntry, error) {
	counts := make(map[int64]int)
	tick := newTicker(b.progress, ports.PhasePreScan, cfg.ProgressInterval)

	for candidate, err := range b.enumerator.Enumerate(ctx, cfg) {
		if err != nil {
			return nil, err
		}
		counts[candidate.Size]++
		tick.advance(candidate.Size)
	}

	buckets := make(map[int64][]domain.FileEntry)
	tick = newTicker(b.progress, ports.PhaseScan, cfg.ProgressInterval)

	for candidate, err := range b.enumerator.Enumerate(ctx, cfg) {
		if err != nil {
			return nil, err
		}
		if counts[candidate.Size] > 1 {
			buckets[candidate.Size] = append(buckets[candidate.Size], domain.NewFileEntry(candidate.Path, candidate.Size))
		}
		tick.advance(candidate.Size)
	}

	// A size counted >1 in pass 1 can still end up a singleton in pass 2.
	for size, entries := range buckets {
		if len(entries) < 2 {
			delete(buckets, size)
		}
	}
	return buckets, nil
}

// ticker drives the optional progress side channel. It never influences
// the bucketing result.
type ticker struct {
	progress ports.Progress
	phase    ports.ScanPhase
	interval int
	files    int64
	bytes    int64
}

func newTicker(progress ports.Progress, phase ports.ScanPhase, interval int) *ticker {
	return &ticker{progress: progress, phase: phase, interval: interval}
}

func (t *ticker) advance(size int64) {
	t.files++
	t.bytes += size
	if t.progress == nil || t.interval <= 0 {
		return
	}
	if t.files%int64(t.interval) == 0 {
		t.progress.OnProgress(t.phase, t.files, t.bytes)
	}
}
