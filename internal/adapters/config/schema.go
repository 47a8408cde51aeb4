package config

// Twinfile represents the structure of the optional twin.yaml file. It
// supplies scan defaults; command-line flags always win over it.
type Twinfile struct {
	MinSizeBytes       int64    `yaml:"minSizeBytes"`
	SafeExtensions     []string `yaml:"safeExtensions"`
	IgnoredDirectories []string `yaml:"ignoredDirectories"`
	IgnoredFiles       []string `yaml:"ignoredFiles"`
	ExactMode          string   `yaml:"exactMode"`
	ActionKind         string   `yaml:"actionKind"`
	QuarantineDir      string   `yaml:"quarantineDir"`
}
