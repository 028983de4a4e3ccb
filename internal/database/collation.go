package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the go-sqlite3 driver with the case folding helpers below
	// registered on every connection.
	DriverName = "sqlite3_readinglist"

	// FoldCollation compares text after Unicode lower-casing, so "Élan" and
	// "élan" are equal. SQLite's built-in NOCASE only folds ASCII.
	FoldCollation = "UNICODE_NOCASE"

	// LowerFunc is the SQL function lower-casing its argument the same way
	// FoldCollation does. SQLite's built-in LOWER only folds ASCII.
	LowerFunc = "unicode_lower"
)

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterCollation(FoldCollation, compareFolded); err != nil {
				return err
			}
			return conn.RegisterFunc(LowerFunc, strings.ToLower, true)
		},
	})
}

func compareFolded(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
