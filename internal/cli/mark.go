package cli

import (
	"context"
	"fmt"
	"io"
)

// MarkCommand changes the read status of one book.
type MarkCommand struct {
	ID     uint
	Read   bool
	Unread bool
	out    io.Writer
}

func NewMarkCommand(out io.Writer) *MarkCommand {
	return &MarkCommand{out: out}
}

func (cmd *MarkCommand) ParseFlags(args []string) error {
	fs := newFlagSet("mark")
	fs.UintVar(&cmd.ID, "id", 0, "ID of the book to update (required)")
	fs.BoolVar(&cmd.Read, "read", false, "Mark the book as read")
	fs.BoolVar(&cmd.Unread, "unread", false, "Mark the book as not read")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == 0 {
		return fmt.Errorf("required flag -id not provided")
	}
	if cmd.Read == cmd.Unread {
		return fmt.Errorf("exactly one of -read or -unread is required")
	}
	return nil
}

func (cmd *MarkCommand) Run(ctx context.Context, store Store) error {
	if err := store.SetReadStatus(ctx, cmd.ID, cmd.Read); err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	book, found, err := store.GetByID(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to load updated book: %w", err)
	}
	if found {
		fmt.Fprintf(cmd.out, "Updated: %s\n", book)
	}
	return nil
}
