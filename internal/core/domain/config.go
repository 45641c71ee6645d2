package domain

// DefaultSnapshotPath is where scan snapshots are stored when the
// configuration does not say otherwise.
const DefaultSnapshotPath = ".cdeps/snapshot.json"

// Config holds the project configuration for a scan.
type Config struct {
	// Root is the directory whose tree is scanned for sources and headers.
	Root string

	// IncludeDirs lists additional directories searched when resolving
	// quoted includes. Order is significant: directories are tried in the
	// order given, after the including unit's own directory.
	IncludeDirs []string

	// Ignore lists glob patterns of file or directory names excluded from
	// the walk.
	Ignore []string

	// SnapshotPath is the location of the persisted scan snapshot.
	SnapshotPath string
}

// DefaultConfig returns the configuration used when no config file exists:
// scan the working directory with no extra include directories.
func DefaultConfig() *Config {
	return &Config{
		Root:         ".",
		SnapshotPath: DefaultSnapshotPath,
	}
}
