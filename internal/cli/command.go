package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/readinglist/internal/config"
	"github.com/mrlokans/readinglist/internal/database/books"
	"github.com/mrlokans/readinglist/internal/entities"
)

// Store is the part of the reading list the commands work with.
type Store interface {
	Add(ctx context.Context, book *entities.Book) (uint, error)
	Save(ctx context.Context, book *entities.Book) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	SetReadStatus(ctx context.Context, id uint, read bool) error
	GetByID(ctx context.Context, id uint) (entities.Book, bool, error)
	Search(ctx context.Context, term string) ([]entities.Book, error)
	GetByReadStatus(ctx context.Context, read bool) ([]entities.Book, error)
	GetAll(ctx context.Context) ([]entities.Book, error)
	Count(ctx context.Context) (int64, error)
}

// Command is a single subcommand of the program. ParseFlags runs before the
// store is opened, so flag mistakes never touch the database.
type Command interface {
	ParseFlags(args []string) error
	Run(ctx context.Context, store Store) error
}

// DefaultCommand runs when no command name is given.
const DefaultCommand = "menu"

// NewCommand returns the command registered under name.
func NewCommand(name string, cfg *config.Config) (Command, bool) {
	switch name {
	case "menu":
		return NewMenuCommand(os.Stdin, os.Stdout), true
	case "list":
		return NewListCommand(os.Stdout), true
	case "search":
		return NewSearchCommand(os.Stdout), true
	case "add":
		return NewAddCommand(os.Stdout), true
	case "mark":
		return NewMarkCommand(os.Stdout), true
	case "delete":
		return NewDeleteCommand(os.Stdout), true
	case "export":
		return NewExportCommand(os.Stdout, cfg.Export.Dir), true
	case "import":
		return NewImportCommand(os.Stdout), true
	}
	return nil, false
}

func PrintUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s <command> [options]\n\n", program)
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "  menu     Interactive reading list menu (default if no command given)\n")
	fmt.Fprintf(w, "  list     Show all, read or unread books\n")
	fmt.Fprintf(w, "  search   Find books by partial title or author\n")
	fmt.Fprintf(w, "  add      Add a book to the reading list\n")
	fmt.Fprintf(w, "  mark     Mark a book as read or not read\n")
	fmt.Fprintf(w, "  delete   Delete one book or the whole list\n")
	fmt.Fprintf(w, "  export   Export the reading list to markdown or JSON\n")
	fmt.Fprintf(w, "  import   Import books from a JSON file\n")
	fmt.Fprintf(w, "\nUse '%s <command> -h' for help on a specific command.\n", program)
	fmt.Fprintf(w, "\nEnvironment: DATABASE_PATH, DATABASE_BUSY_TIMEOUT, DATABASE_LOG_LEVEL, EXPORT_DIR (also read from .env)\n")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

// describeError turns reading list errors into a message for the user.
// ok is false for anything else, which callers should treat as fatal.
func describeError(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, books.ErrDuplicateBook):
		return "That book is already in your reading list.", true
	case errors.Is(err, books.ErrNotFound):
		return "No book with that ID.", true
	case errors.Is(err, books.ErrMissingID):
		return "That book has not been saved yet.", true
	}
	return "", false
}
