package cli

import (
	"context"
	"fmt"
	"io"
)

// DeleteCommand removes one book, or every book with -all.
type DeleteCommand struct {
	ID  uint
	All bool
	out io.Writer
}

func NewDeleteCommand(out io.Writer) *DeleteCommand {
	return &DeleteCommand{out: out}
}

func (cmd *DeleteCommand) ParseFlags(args []string) error {
	fs := newFlagSet("delete")
	fs.UintVar(&cmd.ID, "id", 0, "ID of the book to delete")
	fs.BoolVar(&cmd.All, "all", false, "Delete every book on the reading list")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if (cmd.ID == 0) == !cmd.All {
		return fmt.Errorf("exactly one of -id or -all is required")
	}
	return nil
}

func (cmd *DeleteCommand) Run(ctx context.Context, store Store) error {
	if cmd.All {
		count, err := store.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count books: %w", err)
		}
		if err := store.DeleteAll(ctx); err != nil {
			return fmt.Errorf("failed to delete books: %w", err)
		}
		fmt.Fprintf(cmd.out, "Deleted %d books\n", count)
		return nil
	}

	if err := store.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	fmt.Fprintf(cmd.out, "Deleted book %d\n", cmd.ID)
	return nil
}
