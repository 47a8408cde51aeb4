// Package resolve confirms which same-sized files are true duplicates.
package resolve

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"

	"go.trai.ch/twin/internal/core/domain"
	"go.trai.ch/twin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Resolver turns size buckets into duplicate groups using one of three
// confirmation strategies. Buckets are independent units with no shared
// mutable state, so they are resolved in parallel with a bounded worker
// pool; output ordering stays deterministic (ascending size, insertion
// order within a bucket).
type Resolver struct {
	hasher   ports.Hasher
	comparer ports.Comparer
	progress ports.Progress
	interval int
	workers  int
}

// NewResolver creates a Resolver with one worker per CPU.
func NewResolver(hasher ports.Hasher, comparer ports.Comparer) *Resolver {
	return &Resolver{
		hasher:   hasher,
		comparer: comparer,
		workers:  runtime.NumCPU(),
	}
}

// WithWorkers overrides the worker limit. Used for testing.
func (r *Resolver) WithWorkers(n int) *Resolver {
	if n > 0 {
		r.workers = n
	}
	return r
}

// WithProgress attaches an optional progress sink. One report is emitted
// per completed bucket with cumulative file and byte counts. A zero or
// negative interval disables reporting.
func (r *Resolver) WithProgress(p ports.Progress, interval int) *Resolver {
	r.progress = p
	r.interval = interval
	return r
}

// Resolve confirms duplicates in every bucket. An I/O error while reading
// any file aborts that bucket's resolution and propagates; the caller
// decides whether to abort the scan.
func (r *Resolver) Resolve(
	ctx context.Context,
	mode domain.ExactMode,
	buckets map[int64][]domain.FileEntry,
) ([]domain.DuplicateGroup, error) {
	sizes := make([]int64, 0, len(buckets))
	for size := range buckets {
		sizes = append(sizes, size)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	perBucket := make([][]domain.DuplicateGroup, len(sizes))
	var doneFiles, doneBytes atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			groups, err := r.resolveBucket(mode, size, buckets[size])
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrBucketResolutionFailed.Error()), "size", size)
			}
			perBucket[i] = groups

			if r.progress != nil && r.interval > 0 {
				count := int64(len(buckets[size]))
				r.progress.OnProgress(ports.PhaseResolve, doneFiles.Add(count), doneBytes.Add(count*size))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var groups []domain.DuplicateGroup
	for _, bucketGroups := range perBucket {
		groups = append(groups, bucketGroups...)
	}
	return groups, nil
}

// resolveBucket dispatches exhaustively on the strategy.
func (r *Resolver) resolveBucket(mode domain.ExactMode, size int64, entries []domain.FileEntry) ([]domain.DuplicateGroup, error) {
	if len(entries) < 2 {
		return nil, nil
	}

	switch mode {
	case domain.ModeBinaryForPairs:
		if len(entries) == 2 {
			return r.comparePair(size, entries)
		}
		return r.hashGroups(size, entries)
	case domain.ModeHashOnly:
		return r.hashGroups(size, entries)
	case domain.ModeHashVerify:
		groups, err := r.hashGroups(size, entries)
		if err != nil {
			return nil, err
		}
		return r.verifyGroups(groups)
	default:
		return nil, zerr.With(domain.ErrUnknownExactMode, "mode", string(mode))
	}
}

// comparePair confirms a two-member bucket with a direct byte comparison.
// Hashing both files would read every byte of each; the comparison stops
// at the first mismatch.
func (r *Resolver) comparePair(size int64, entries []domain.FileEntry) ([]domain.DuplicateGroup, error) {
	equal, err := r.comparer.SameContent(entries[0].Path, entries[1].Path)
	if err != nil {
		return nil, err
	}
	if !equal {
		return nil, nil
	}
	return []domain.DuplicateGroup{{Size: size, Members: entries}}, nil
}

// hashGroups groups a bucket by full content digest. Buckets with more
// than two members are first partitioned by a quick digest of the leading
// bytes; identical files always share it, so partitions only ever split
// non-duplicates apart early, and the full digest still decides.
func (r *Resolver) hashGroups(size int64, entries []domain.FileEntry) ([]domain.DuplicateGroup, error) {
	partitions := [][]domain.FileEntry{entries}
	if len(entries) > 2 {
		var err error
		partitions, err = r.quickPartition(entries)
		if err != nil {
			return nil, err
		}
	}

	var groups []domain.DuplicateGroup
	for _, partition := range partitions {
		partGroups, err := r.digestGroups(size, partition)
		if err != nil {
			return nil, err
		}
		groups = append(groups, partGroups...)
	}
	return groups, nil
}

func (r *Resolver) quickPartition(entries []domain.FileEntry) ([][]domain.FileEntry, error) {
	byQuick := make(map[uint64][]domain.FileEntry)
	order := make([]uint64, 0, len(entries))

	for _, entry := range entries {
		quick, err := r.hasher.QuickDigest(entry.Path)
		if err != nil {
			return nil, err
		}
		if _, seen := byQuick[quick]; !seen {
			order = append(order, quick)
		}
		byQuick[quick] = append(byQuick[quick], entry)
	}

	partitions := make([][]domain.FileEntry, 0, len(order))
	for _, quick := range order {
		if members := byQuick[quick]; len(members) >= 2 {
			partitions = append(partitions, members)
		}
	}
	return partitions, nil
}

func (r *Resolver) digestGroups(size int64, entries []domain.FileEntry) ([]domain.DuplicateGroup, error) {
	byDigest := make(map[string][]domain.FileEntry)
	order := make([]string, 0, len(entries))

	for _, entry := range entries {
		digest, err := r.hasher.ContentDigest(entry.Path)
		if err != nil {
			return nil, err
		}
		if _, seen := byDigest[digest]; !seen {
			order = append(order, digest)
		}
		byDigest[digest] = append(byDigest[digest], entry.WithDigest(digest))
	}

	var groups []domain.DuplicateGroup
	for _, digest := range order {
		if members := byDigest[digest]; len(members) >= 2 {
			groups = append(groups, domain.DuplicateGroup{Size: size, Members: members})
		}
	}
	return groups, nil
}

// verifyGroups re-confirms every non-first member against the group's
// first member (insertion order) with a full byte comparison. This guards
// against digest collisions and bugs in the hashing path at extra I/O cost.
func (r *Resolver) verifyGroups(groups []domain.DuplicateGroup) ([]domain.DuplicateGroup, error) {
	verified := make([]domain.DuplicateGroup, 0, len(groups))

	for _, group := range groups {
		reference := group.Members[0]
		members := []domain.FileEntry{reference}

		for _, member := range group.Members[1:] {
			equal, err := r.comparer.SameContent(reference.Path, member.Path)
			if err != nil {
				return nil, err
			}
			if equal {
				members = append(members, member)
			}
		}

		if len(members) >= 2 {
			verified = append(verified, domain.DuplicateGroup{Size: group.Size, Members: members})
		}
	}
	return verified, nil
}
