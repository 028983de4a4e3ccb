package config

const (
	// DefaultDatabasePath is the default path for the reading list database
	DefaultDatabasePath = "./reading-list.db"

	// DefaultExportDir is where exports land when no directory is given
	DefaultExportDir = "./export"
)
