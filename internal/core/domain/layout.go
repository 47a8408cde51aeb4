package domain

const (
	// TwinFileName is the name of the optional configuration file.
	TwinFileName = "twin.yaml"

	// DefaultPlanFileName is the plan file written by scan when no
	// explicit output path is given.
	DefaultPlanFileName = "twin.plan.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
