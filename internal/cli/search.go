package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mrlokans/readinglist/internal/ui"
)

// SearchCommand prints books whose title or author contains a term.
type SearchCommand struct {
	Term string
	out  io.Writer
}

func NewSearchCommand(out io.Writer) *SearchCommand {
	return &SearchCommand{out: out}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := newFlagSet("search")
	fs.StringVar(&cmd.Term, "term", "", "Text to look for in titles and authors, case-insensitive (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Term == "" {
		return fmt.Errorf("required flag -term not provided")
	}
	return nil
}

func (cmd *SearchCommand) Run(ctx context.Context, store Store) error {
	matches, err := store.Search(ctx, cmd.Term)
	if err != nil {
		return fmt.Errorf("failed to search books: %w", err)
	}
	ui.WriteBooks(cmd.out, matches)
	return nil
}
