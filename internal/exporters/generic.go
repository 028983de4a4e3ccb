package exporters

import (
	"fmt"
	"os"

	"github.com/mrlokans/readinglist/internal/entities"
)

type BookExporter interface {
	Export(books []entities.Book) (ExportResult, error)
}

type ExportResult struct {
	Path        string `json:"path"`
	BooksRead   int    `json:"books_read"`
	BooksToRead int    `json:"books_to_read"`
}

func (r ExportResult) BooksProcessed() int {
	return r.BooksRead + r.BooksToRead
}

func countBooks(books []entities.Book) ExportResult {
	result := ExportResult{}
	for _, book := range books {
		if book.Read {
			result.BooksRead++
		} else {
			result.BooksToRead++
		}
	}
	return result
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}
