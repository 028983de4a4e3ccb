// Package books provides the reading list store: persistence and queries for books.
//
// Every method is a single SQL statement, so a call either fully applies or
// leaves the table untouched, and the connection goes back to the pool on
// every return path.
//
// # Usage
//
//	store := books.NewStore(db.DB)
//	book := entities.NewBook("Dune", "Frank Herbert", false)
//	id, err := store.Add(ctx, &book)
//	if errors.Is(err, books.ErrDuplicateBook) {
//		// already on the list
//	}
package books

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/readinglist/internal/database"
	"github.com/mrlokans/readinglist/internal/entities"
)

// Store handles all reading list database operations.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an open connection whose schema is in place.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Add inserts book as a new record, ignoring any ID it already carries,
// and fills in the ID the database assigned.
func (s *Store) Add(ctx context.Context, book *entities.Book) (uint, error) {
	record := entities.Book{
		Title:  book.Title,
		Author: book.Author,
		Read:   book.Read,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("add %q by %q: %w", book.Title, book.Author, ErrDuplicateBook)
		}
		return 0, storageError("add book", err)
	}
	book.ID = record.ID
	return record.ID, nil
}

// Update overwrites title, author and read status of the stored book with book.ID.
func (s *Store) Update(ctx context.Context, book *entities.Book) error {
	if book.ID == 0 {
		return fmt.Errorf("update %q by %q: %w", book.Title, book.Author, ErrMissingID)
	}

	result := s.db.WithContext(ctx).Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":  book.Title,
			"author": book.Author,
			"read":   book.Read,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("update book %d: %w", book.ID, ErrDuplicateBook)
		}
		return storageError("update book", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update book %d: %w", book.ID, ErrNotFound)
	}
	return nil
}

// Save adds books that have no ID yet and updates the rest.
func (s *Store) Save(ctx context.Context, book *entities.Book) error {
	if book.ID == 0 {
		_, err := s.Add(ctx, book)
		return err
	}
	return s.Update(ctx, book)
}

// Delete removes the book with the given id.
func (s *Store) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return fmt.Errorf("delete book: %w", ErrMissingID)
	}

	result := s.db.WithContext(ctx).Delete(&entities.Book{}, id)
	if result.Error != nil {
		return storageError("delete book", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete book %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteBook removes the stored record behind book.
func (s *Store) DeleteBook(ctx context.Context, book entities.Book) error {
	return s.Delete(ctx, book.ID)
}

// DeleteAll empties the reading list. Ids already handed out stay retired.
func (s *Store) DeleteAll(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Book{}).Error
	if err != nil {
		return storageError("delete all books", err)
	}
	return nil
}

// SetReadStatus changes only the read flag of the book with the given id.
func (s *Store) SetReadStatus(ctx context.Context, id uint, read bool) error {
	result := s.db.WithContext(ctx).Model(&entities.Book{}).
		Where("id = ?", id).
		Update("read", read)
	if result.Error != nil {
		return storageError("set read status", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("set read status of book %d: %w", id, ErrNotFound)
	}
	return nil
}

// ExistsExact reports whether a book with the same title and author is stored,
// ignoring case, ID and read status.
func (s *Store) ExistsExact(ctx context.Context, candidate entities.Book) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entities.Book{}).
		Where("title = ? COLLATE "+database.FoldCollation+" AND author = ? COLLATE "+database.FoldCollation,
			candidate.Title, candidate.Author).
		Count(&count).Error
	if err != nil {
		return false, storageError("exact match", err)
	}
	return count > 0, nil
}

// ContainsIdentity reports whether a record with exactly book.ID is stored.
func (s *Store) ContainsIdentity(ctx context.Context, book entities.Book) (bool, error) {
	if book.ID == 0 {
		return false, nil
	}
	var count int64
	err := s.db.WithContext(ctx).Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Count(&count).Error
	if err != nil {
		return false, storageError("identity match", err)
	}
	return count > 0, nil
}

// GetByID returns the book with the given id. found is false when there is none.
func (s *Store) GetByID(ctx context.Context, id uint) (book entities.Book, found bool, err error) {
	err = s.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Book{}, false, nil
	}
	if err != nil {
		return entities.Book{}, false, storageError("get book", err)
	}
	return book, true, nil
}

// Search returns books whose title or author contains term (case-insensitive partial match).
func (s *Store) Search(ctx context.Context, term string) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	searchPattern := "%" + escapeLike(term) + "%"
	err := s.db.WithContext(ctx).
		Where(searchCondition, searchPattern, searchPattern).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		return nil, storageError("search books", err)
	}
	return books, nil
}

// GetByReadStatus returns every book whose read flag equals read.
func (s *Store) GetByReadStatus(ctx context.Context, read bool) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := s.db.WithContext(ctx).Where("read = ?", read).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, storageError("get books by read status", err)
	}
	return books, nil
}

// GetAll returns the whole reading list in insertion order.
func (s *Store) GetAll(ctx context.Context) ([]entities.Book, error) {
	books := make([]entities.Book, 0)
	err := s.db.WithContext(ctx).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, storageError("get all books", err)
	}
	return books, nil
}

// Count returns the number of stored books.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&entities.Book{}).Count(&count).Error; err != nil {
		return 0, storageError("count books", err)
	}
	return count, nil
}

var searchCondition = fmt.Sprintf(`%[1]s(title) LIKE %[1]s(?) ESCAPE '\' OR %[1]s(author) LIKE %[1]s(?) ESCAPE '\'`,
	database.LowerFunc)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
