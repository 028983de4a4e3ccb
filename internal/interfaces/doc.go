// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - entities.Saver: persist a single book, add or update (internal/entities/book.go)
//   - cli.Store: everything the commands need from the reading list (internal/cli/command.go)
//   - importers.Adder: add-only access used by the import pipeline (internal/importers/pipeline.go)
//
// All three are satisfied by *books.Store (internal/database/books/store.go).
// checks.go asserts this at compile time:
//
//	var _ Store = (*books.Store)(nil)
//
// ## Output Interfaces
//
//   - exporters.BookExporter: write the reading list somewhere (internal/exporters/generic.go)
//
// ## Command Interface
//
//   - cli.Command: ParseFlags then Run against a store (internal/cli/command.go)
//
// # Adding a New Command
//
// Create internal/cli/<name>.go with a struct holding its flags and an io.Writer:
//
//	type StatsCommand struct {
//		out io.Writer
//	}
//
//	func (cmd *StatsCommand) ParseFlags(args []string) error {
//		return newFlagSet("stats").Parse(args)
//	}
//
//	func (cmd *StatsCommand) Run(ctx context.Context, store Store) error {
//		count, err := store.Count(ctx)
//		...
//	}
//
// Then register it in cli.NewCommand and describe it in cli.PrintUsage.
//
// # Adding a New Export Format
//
//  1. Create internal/exporters/<format>.go implementing BookExporter
//  2. Add the format name to cli.ExportCommand
//
// # Error Contract
//
// Store methods return sentinel errors from internal/database/books/errors.go,
// wrapped with context. Check them with errors.Is:
//
//   - books.ErrDuplicateBook: title and author already stored (case-insensitive)
//   - books.ErrNotFound: no book with that id
//   - books.ErrMissingID: update or delete of a book that was never saved
//   - books.ErrStorage: the database itself failed
//
// Lookups (GetByID, Search, GetByReadStatus, GetAll) never report "no results"
// as an error.
package interfaces
