package database

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tune how the SQLite connection is opened.
type Options struct {
	BusyTimeout time.Duration
	LogLevel    logger.LogLevel
}

func DefaultOptions() Options {
	return Options{
		BusyTimeout: 5 * time.Second,
		LogLevel:    logger.Warn,
	}
}

type Database struct {
	DB   *gorm.DB
	path string
	refs int
}

var (
	openMu    sync.Mutex
	openByKey = map[string]*Database{}
)

// Open returns the process-wide database for dbPath, connecting on first use.
// Every caller asking for the same file gets the same *Database and must Close it
// when done; the connection stays open until the last holder closes.
func Open(dbPath string, opts Options) (*Database, error) {
	key, err := storageKey(dbPath)
	if err != nil {
		return nil, err
	}

	openMu.Lock()
	defer openMu.Unlock()

	if existing, ok := openByKey[key]; ok {
		existing.refs++
		return existing, nil
	}

	database, err := NewDatabase(dbPath, opts)
	if err != nil {
		return nil, err
	}
	database.path = key
	database.refs = 1
	openByKey[key] = database
	return database, nil
}

// NewDatabase opens a dedicated connection to dbPath and makes sure the schema exists.
// Tests use it directly to get an isolated database; the application goes through Open.
func NewDatabase(dbPath string, opts Options) (*Database, error) {
	dialector := sqlite.New(sqlite.Config{
		DriverName: DriverName,
		DSN:        dsn(dbPath, opts),
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps :memory: a single database.
	sqlDB.SetMaxOpenConns(1)

	if err := ensureSchema(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

// Close releases the connection. A database obtained from Open is only closed
// once every holder has closed it; then it is forgotten, so the next Open for
// the same path connects again.
func (d *Database) Close() error {
	if d.path != "" {
		openMu.Lock()
		if d.refs > 1 {
			d.refs--
			openMu.Unlock()
			return nil
		}
		d.refs = 0
		if openByKey[d.path] == d {
			delete(openByKey, d.path)
		}
		openMu.Unlock()
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ParseLogLevel maps a config string onto a GORM log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func dsn(dbPath string, opts Options) string {
	if opts.BusyTimeout <= 0 {
		return dbPath
	}
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d", dbPath, sep, opts.BusyTimeout.Milliseconds())
}

func storageKey(dbPath string) (string, error) {
	if dbPath == "" {
		return "", fmt.Errorf("database path is empty")
	}
	if dbPath == ":memory:" || strings.HasPrefix(dbPath, "file:") {
		return dbPath, nil
	}
	abs, err := filepath.Abs(dbPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	return abs, nil
}
