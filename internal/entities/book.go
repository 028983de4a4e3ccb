package entities

import (
	"context"
	"fmt"
)

// Book is a single entry of the reading list.
// ID is zero until the book has been saved for the first time.
type Book struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string `gorm:"not null" json:"title"`
	Author string `gorm:"not null" json:"author"`
	Read   bool   `gorm:"not null" json:"read"`
}

func (Book) TableName() string {
	return "books"
}

// Saver persists a book, assigning an ID to new ones.
type Saver interface {
	Save(ctx context.Context, book *Book) error
}

func NewBook(title, author string, read bool) Book {
	return Book{
		Title:  title,
		Author: author,
		Read:   read,
	}
}

// Save asks the store to persist this book. New books get their ID filled in.
func (b *Book) Save(ctx context.Context, store Saver) error {
	return store.Save(ctx, b)
}

// Equal compares every field, ID included.
func (b Book) Equal(other Book) bool {
	return b.ID == other.ID &&
		b.Title == other.Title &&
		b.Author == other.Author &&
		b.Read == other.Read
}

func (b Book) String() string {
	readStatus := "have not"
	if b.Read {
		readStatus = "have"
	}
	return fmt.Sprintf("ID %d, Title: %s, Author: %s. You %s read this book.", b.ID, b.Title, b.Author, readStatus)
}
