package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/readinglist/internal/importers"
)

// ImportCommand adds books from a JSON file, skipping ones already on the list.
type ImportCommand struct {
	FilePath string
	Verbose  bool
	DryRun   bool
	out      io.Writer
}

func NewImportCommand(out io.Writer) *ImportCommand {
	return &ImportCommand{out: out}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := newFlagSet("import")
	fs.StringVar(&cmd.FilePath, "file", "", "Path to a JSON file with books (required)")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "List every book found in the file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: import -file <path> [options]\n\n")
		fmt.Fprintf(fs.Output(), "Accepts a file written by 'export -format json' or a plain array:\n")
		fmt.Fprintf(fs.Output(), "  [{\"title\": \"Dune\", \"author\": \"Frank Herbert\", \"read\": true}]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *ImportCommand) Run(ctx context.Context, store Store) error {
	file, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer file.Close()

	parsed, err := importers.ParseJSON(file)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Found %d books in %s\n", len(parsed), cmd.FilePath)
	if cmd.Verbose {
		for i, book := range parsed {
			status := "not read"
			if book.Read {
				status = "read"
			}
			fmt.Fprintf(cmd.out, "%d. %q by %s (%s)\n", i+1, book.Title, book.Author, status)
		}
	}

	if cmd.DryRun {
		fmt.Fprintf(cmd.out, "Dry run complete. Use without -dry-run to import.\n")
		return nil
	}

	result, err := importers.NewPipeline(store).Import(ctx, parsed)
	if err != nil {
		return fmt.Errorf("import interrupted: %w", err)
	}

	fmt.Fprintf(cmd.out, "\n=== Import Summary ===\n")
	fmt.Fprintf(cmd.out, "Books added: %d/%d\n", result.BooksCreated, len(parsed))
	fmt.Fprintf(cmd.out, "Already on the list: %d\n", result.BooksSkipped)
	if len(result.Errors) > 0 {
		fmt.Fprintf(cmd.out, "\n%d errors occurred:\n", len(result.Errors))
		for _, errMsg := range result.Errors {
			fmt.Fprintf(cmd.out, "  [ERROR] %s\n", errMsg)
		}
		return fmt.Errorf("%d books failed to import", len(result.Errors))
	}
	return nil
}
