package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/mrlokans/readinglist/internal/entities"
	"github.com/mrlokans/readinglist/internal/ui"
)

// ListCommand prints the reading list, optionally only read or unread books.
type ListCommand struct {
	OnlyRead   bool
	OnlyUnread bool
	out        io.Writer
}

func NewListCommand(out io.Writer) *ListCommand {
	return &ListCommand{out: out}
}

func (cmd *ListCommand) ParseFlags(args []string) error {
	fs := newFlagSet("list")
	fs.BoolVar(&cmd.OnlyRead, "read", false, "Show only books you have read")
	fs.BoolVar(&cmd.OnlyUnread, "unread", false, "Show only books you have not read")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.OnlyRead && cmd.OnlyUnread {
		return fmt.Errorf("flags -read and -unread are mutually exclusive")
	}
	return nil
}

func (cmd *ListCommand) Run(ctx context.Context, store Store) error {
	var (
		found []entities.Book
		err   error
	)
	switch {
	case cmd.OnlyRead:
		found, err = store.GetByReadStatus(ctx, true)
	case cmd.OnlyUnread:
		found, err = store.GetByReadStatus(ctx, false)
	default:
		found, err = store.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	ui.WriteBooks(cmd.out, found)

	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count books: %w", err)
	}
	fmt.Fprintf(cmd.out, "Showing %d of %d books\n", len(found), total)
	return nil
}
