package domain

import "go.trai.ch/zerr"

var (
	// ErrNoPathsSpecified is returned when a scan is requested without any root paths.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrUnknownActionKind is returned when an action kind string is not recognized.
	ErrUnknownActionKind = zerr.New("unknown action kind, expected 'quarantine', 'delete' or 'hardlink'")

	// ErrUnknownExactMode is returned when an exact mode string is not recognized.
	ErrUnknownExactMode = zerr.New("unknown exact mode, expected 'binary-for-pairs', 'hash-only' or 'hash-verify'")

	// ErrQuarantineDirRequired is returned when a plan contains quarantine actions
	// but no quarantine directory was configured.
	ErrQuarantineDirRequired = zerr.New("quarantine directory required for quarantine actions")

	// ErrDeleteNotAllowed is returned when a plan contains delete actions but
	// deletion was not explicitly allowed.
	ErrDeleteNotAllowed = zerr.New("delete actions require --allow-delete")

	// ErrHardLinkUnsupported is returned on platforms without hard link support.
	ErrHardLinkUnsupported = zerr.New("hard links are not supported on this platform")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file's content fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrFileCompareFailed is returned when a byte comparison cannot be completed.
	ErrFileCompareFailed = zerr.New("failed to compare file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrBucketResolutionFailed is returned when a size bucket cannot be resolved.
	ErrBucketResolutionFailed = zerr.New("failed to resolve size bucket")

	// ErrPlanMarshalFailed is returned when the plan cannot be encoded.
	ErrPlanMarshalFailed = zerr.New("failed to marshal plan")

	// ErrPlanWriteFailed is returned when the plan file cannot be written.
	ErrPlanWriteFailed = zerr.New("failed to write plan file")

	// ErrPlanCreateFailed is returned when the plan file directory cannot be created.
	ErrPlanCreateFailed = zerr.New("failed to create plan directory")

	// ErrPlanReadFailed is returned when the plan file cannot be read.
	ErrPlanReadFailed = zerr.New("failed to read plan file")

	// ErrPlanParseFailed is returned when the plan file cannot be decoded.
	ErrPlanParseFailed = zerr.New("failed to parse plan file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrApplyFailed is returned by the CLI when one or more actions failed.
	ErrApplyFailed = zerr.New("one or more actions failed")
)
