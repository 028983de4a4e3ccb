package importers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mrlokans/readinglist/internal/database/books"
	"github.com/mrlokans/readinglist/internal/entities"
)

// Adder stores a new book and reports books.ErrDuplicateBook for books
// already on the list.
type Adder interface {
	Add(ctx context.Context, book *entities.Book) (uint, error)
}

type ImportResult struct {
	BooksCreated int
	BooksSkipped int // already on the reading list
	Errors       []string
}

// Pipeline adds parsed books to the store one at a time. A failure on one
// book does not stop the rest.
type Pipeline struct {
	store Adder
}

func NewPipeline(store Adder) *Pipeline {
	return &Pipeline{store: store}
}

// Import adds every book, filling in IDs of the ones that were created.
// Only context cancellation aborts the run early.
func (p *Pipeline) Import(ctx context.Context, toImport []entities.Book) (ImportResult, error) {
	result := ImportResult{}

	for i := range toImport {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		book := &toImport[i]
		_, err := p.store.Add(ctx, book)
		switch {
		case err == nil:
			result.BooksCreated++
		case errors.Is(err, books.ErrDuplicateBook):
			result.BooksSkipped++
		default:
			log.Printf("Failed to import '%s' by %s: %v", book.Title, book.Author, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%q by %s: %v", book.Title, book.Author, err))
		}
	}

	return result, nil
}
