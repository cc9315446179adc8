package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default tcof data directory name (relative to home).
	DefaultDataDir = ".tcof"

	// Data directory files.

	// DBFile is the filename of the SQLite database.
	DBFile = "tcof.db"
	// CatalogFile is the filename of the success factor catalog.
	CatalogFile = "catalog.yaml"
)

// DataDir returns the tcof data directory under the given home directory.
func DataDir(home string) string {
	return filepath.Join(home, DefaultDataDir)
}

// DBPath returns the SQLite database path under the given home directory.
func DBPath(home string) string {
	return filepath.Join(DataDir(home), DBFile)
}

// CatalogPath returns the catalog file path under the given home directory.
func CatalogPath(home string) string {
	return filepath.Join(DataDir(home), CatalogFile)
}
