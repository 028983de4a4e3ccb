package database

import "gorm.io/gorm"

// AUTOINCREMENT keeps SQLite from handing out the id of a deleted row again.
// The fold collation on both columns makes the unique index and plain equality
// case-insensitive for any alphabet.
const booksTableDDL = `
CREATE TABLE IF NOT EXISTS books (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	title  TEXT    NOT NULL COLLATE UNICODE_NOCASE,
	author TEXT    NOT NULL COLLATE UNICODE_NOCASE,
	read   BOOLEAN NOT NULL DEFAULT 0
)`

const booksUniqueIndexDDL = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_books_title_author ON books (title, author)`

const booksReadIndexDDL = `
CREATE INDEX IF NOT EXISTS idx_books_read ON books (read)`

func ensureSchema(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{booksTableDDL, booksUniqueIndexDDL, booksReadIndexDDL} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
