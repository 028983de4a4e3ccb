// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, per-path handle cache
//	├── schema.go        # books table and its indexes
//	└── books/           # Reading list CRUD and queries
//
// # Usage
//
// The application root opens the database once and hands the store to
// everything that needs it:
//
//	db, err := database.Open("./reading-list.db", database.DefaultOptions())
//	store := books.NewStore(db.DB)
//
// Open returns the same *Database for the same file for the lifetime of the
// process, so two call sites can never end up with independent copies of the
// reading list. Tests call NewDatabase with a path under t.TempDir() instead.
//
// # Constraints in the schema
//
// Uniqueness of (title, author) and id allocation live in SQLite itself, see
// schema.go. Code in books/ never checks for duplicates before inserting and
// never computes ids.
package database
