package domain

// ApplyResult is the tally produced by one Apply call.
type ApplyResult struct {
	Total   int
	Applied int
	Skipped int
	Failed  int
	DryRun  bool
}

// ScanConfig is the full enumeration configuration, passed explicitly per
// call; no global state survives an invocation.
type ScanConfig struct {
	// Paths are the roots to scan, files or directories. At least one.
	Paths []string
	// Recursive descends into subdirectories.
	Recursive bool
	// UsePreScan enables the two-pass bucketer: count sizes first, then
	// materialize entries only for sizes seen more than once.
	UsePreScan bool
	// MinFileSizeBytes filters out files smaller than this before yielding.
	MinFileSizeBytes int64
	// SafeExtensions is an allow-list with leading dots. Empty allows all.
	SafeExtensions []string
	// IgnoredDirNames and IgnoredFileNames are matched case-insensitively.
	IgnoredDirNames  []string
	IgnoredFileNames []string
	// ProgressInterval is the number of files between progress callbacks.
	// Zero disables them.
	ProgressInterval int
}
