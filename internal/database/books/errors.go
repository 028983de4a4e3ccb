package books

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

var (
	// ErrDuplicateBook is returned when a book with the same title and author
	// (ignoring case) is already stored.
	ErrDuplicateBook = errors.New("book with this title and author already exists")

	// ErrNotFound is returned when an operation targets an id that is not stored.
	ErrNotFound = errors.New("book not found")

	// ErrMissingID is returned when an update or delete is given a book without an id.
	ErrMissingID = errors.New("book has no id")

	// ErrStorage wraps failures of the storage engine itself.
	ErrStorage = errors.New("storage failure")
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
