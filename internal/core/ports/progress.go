package ports

// ScanPhase names the pipeline phase a progress report belongs to.
type ScanPhase string

const (
	// PhasePreScan is the counting pass of the two-pass bucketer.
	PhasePreScan ScanPhase = "pre-scan"
	// PhaseScan is the materializing enumeration pass.
	PhaseScan ScanPhase = "scan"
	// PhaseResolve is duplicate confirmation (hashing and comparison).
	PhaseResolve ScanPhase = "resolve"
)

// Progress is an optional side channel for periodic scan statistics.
// It is instrumentation only and must never influence grouping results.
//
//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks
type Progress interface {
	// OnProgress reports cumulative file and byte counts for a phase.
	OnProgress(phase ScanPhase, files, bytes int64)
}
