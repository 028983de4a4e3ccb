package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mrlokans/readinglist/internal/exporters"
)

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ExportCommand writes the whole reading list to a markdown or JSON file.
type ExportCommand struct {
	Format    string
	OutputDir string
	out       io.Writer
}

func NewExportCommand(out io.Writer, defaultDir string) *ExportCommand {
	return &ExportCommand{out: out, OutputDir: defaultDir}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := newFlagSet("export")
	fs.StringVar(&cmd.Format, "format", FormatMarkdown, "Export format: markdown or json")
	fs.StringVar(&cmd.OutputDir, "output", cmd.OutputDir, "Directory to write the export into")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Format != FormatMarkdown && cmd.Format != FormatJSON {
		return fmt.Errorf("unknown format %q, expected %s or %s", cmd.Format, FormatMarkdown, FormatJSON)
	}
	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -output not provided")
	}
	return nil
}

func (cmd *ExportCommand) Run(ctx context.Context, store Store) error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load books: %w", err)
	}

	var exporter exporters.BookExporter
	switch cmd.Format {
	case FormatJSON:
		exporter = exporters.NewJSONExporter(absOutputDir)
	default:
		exporter = exporters.NewMarkdownExporter(absOutputDir)
	}

	result, err := exporter.Export(all)
	if err != nil {
		return fmt.Errorf("failed to export reading list: %w", err)
	}

	fmt.Fprintf(cmd.out, "Exported %d books (%d read, %d to read) to %s\n",
		result.BooksProcessed(), result.BooksRead, result.BooksToRead, result.Path)
	return nil
}
