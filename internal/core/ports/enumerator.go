// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"iter"

	"go.trai.ch/twin/internal/core/domain"
)

// Enumerator yields file candidates under the configured roots.
//
// Enumeration is lazy and finite. Order is unspecified and must not be
// relied upon. Unreadable directories are skipped silently; every other
// error terminates the sequence with a non-nil error value.
//
//go:generate mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// Enumerate returns an iterator over candidates. Cancellation of ctx
	// is checked between yielded items and ends the sequence with ctx's error.
	Enumerate(ctx context.Context, cfg domain.ScanConfig) iter.Seq2[domain.FileCandidate, error]
}
