package importers

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/readinglist/internal/entities"
)

// jsonBook is one entry of an import file. IDs in the file are ignored:
// imported books always get fresh ones.
type jsonBook struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Read   bool   `json:"read"`
}

type jsonDocument struct {
	Books []jsonBook `json:"books"`
}

// ParseJSON reads either a JSON export document ({"books": [...]}) or a bare
// array of books. Entries without a title or author are rejected.
func ParseJSON(r io.Reader) ([]entities.Book, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var raw []jsonBook
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(trimmed, &raw)
	} else {
		var doc jsonDocument
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(trimmed, &doc)
		raw = doc.Books
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	books := make([]entities.Book, 0, len(raw))
	for i, entry := range raw {
		title := strings.TrimSpace(entry.Title)
		author := strings.TrimSpace(entry.Author)
		if title == "" || author == "" {
			return nil, fmt.Errorf("book #%d: title and author are required", i+1)
		}
		books = append(books, entities.NewBook(title, author, entry.Read))
	}
	return books, nil
}
