package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/mrlokans/readinglist/internal/entities"
)

const JSONFileName = "reading-list.json"

// Document is the JSON representation of an exported reading list.
// importers.ParseJSON reads the same shape back.
type Document struct {
	ExportedAt time.Time       `json:"exported_at"`
	Books      []entities.Book `json:"books"`
}

type JSONExporter struct {
	ExportDir string
	now       func() time.Time
}

func NewJSONExporter(exportDir string) *JSONExporter {
	return &JSONExporter{
		ExportDir: exportDir,
		now:       time.Now,
	}
}

func (exporter *JSONExporter) Export(books []entities.Book) (ExportResult, error) {
	if err := ensureDir(exporter.ExportDir); err != nil {
		return ExportResult{}, err
	}

	if books == nil {
		books = []entities.Book{}
	}
	doc := Document{
		ExportedAt: exporter.now().UTC(),
		Books:      books,
	}
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to marshal reading list: %w", err)
	}

	outputPath := filepath.Join(exporter.ExportDir, JSONFileName)
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write JSON export: %w", err)
	}

	result := countBooks(books)
	result.Path = outputPath
	log.Printf("Exported %d books to %s", result.BooksProcessed(), outputPath)
	return result, nil
}

var _ BookExporter = (*JSONExporter)(nil)
