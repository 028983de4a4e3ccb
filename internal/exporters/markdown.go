package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/readinglist/internal/entities"
)

const MarkdownFileName = "reading-list.md"

// MarkdownExporter writes the reading list as a single markdown checklist,
// unread books first.
type MarkdownExporter struct {
	ExportDir string
	now       func() time.Time
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{
		ExportDir: exportDir,
		now:       time.Now,
	}
}

func GenerateMarkdown(books []entities.Book, createdAt time.Time) string {
	var builder strings.Builder

	counts := countBooks(books)
	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: reading_list\n")
	fmt.Fprintf(&builder, "created_at: %s\n", createdAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "books_total: %d\n", counts.BooksProcessed())
	fmt.Fprintf(&builder, "books_read: %d\n", counts.BooksRead)
	fmt.Fprintf(&builder, "tags: reading-list, books\n")
	fmt.Fprintf(&builder, "---\n\n")

	writeSection(&builder, "To Read", books, false)
	writeSection(&builder, "Read", books, true)

	return builder.String()
}

func writeSection(builder *strings.Builder, heading string, books []entities.Book, read bool) {
	fmt.Fprintf(builder, "## %s\n\n", heading)

	written := 0
	for _, book := range books {
		if book.Read != read {
			continue
		}
		mark := " "
		if book.Read {
			mark = "x"
		}
		fmt.Fprintf(builder, "- [%s] %s, by %s (ID %d)\n", mark, escapeMarkdown(book.Title), escapeMarkdown(book.Author), book.ID)
		written++
	}
	if written == 0 {
		fmt.Fprintf(builder, "_Nothing here yet._\n")
	}
	fmt.Fprintf(builder, "\n")
}

var markdownEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `_`, `\_`, `[`, `\[`, `]`, `\]`, "\n", " ")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func (exporter *MarkdownExporter) Export(books []entities.Book) (ExportResult, error) {
	if err := ensureDir(exporter.ExportDir); err != nil {
		return ExportResult{}, err
	}

	outputPath := filepath.Join(exporter.ExportDir, MarkdownFileName)
	content := GenerateMarkdown(books, exporter.now())
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write markdown export: %w", err)
	}

	result := countBooks(books)
	result.Path = outputPath
	log.Printf("Exported %d books to %s", result.BooksProcessed(), outputPath)
	return result, nil
}

var _ BookExporter = (*MarkdownExporter)(nil)
