package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/readinglist/internal/entities"
)

// AddCommand adds a single book.
type AddCommand struct {
	Title  string
	Author string
	Read   bool
	out    io.Writer
}

func NewAddCommand(out io.Writer) *AddCommand {
	return &AddCommand{out: out}
}

func (cmd *AddCommand) ParseFlags(args []string) error {
	fs := newFlagSet("add")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Book author (required)")
	fs.BoolVar(&cmd.Read, "read", false, "Mark the book as already read")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.Author = strings.TrimSpace(cmd.Author)
	if cmd.Title == "" || cmd.Author == "" {
		return fmt.Errorf("required flags -title and -author not provided")
	}
	return nil
}

func (cmd *AddCommand) Run(ctx context.Context, store Store) error {
	book := entities.NewBook(cmd.Title, cmd.Author, cmd.Read)
	if _, err := store.Add(ctx, &book); err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}
	fmt.Fprintf(cmd.out, "Added: %s\n", book)
	return nil
}
