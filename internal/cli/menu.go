package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mrlokans/readinglist/internal/menu"
	"github.com/mrlokans/readinglist/internal/ui"
)

const quitKey = "Q"

// MenuCommand runs the interactive reading list session.
type MenuCommand struct {
	in  io.Reader
	out io.Writer
}

func NewMenuCommand(in io.Reader, out io.Writer) *MenuCommand {
	return &MenuCommand{in: in, out: out}
}

func (cmd *MenuCommand) ParseFlags(args []string) error {
	fs := newFlagSet("menu")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: menu\n\nInteractive menu to add, search, list and update books.\n")
	}
	return fs.Parse(args)
}

// Run shows the menu until the user quits or input runs out.
func (cmd *MenuCommand) Run(ctx context.Context, store Store) error {
	session := &menuSession{store: store, ui: ui.New(cmd.in, cmd.out)}
	m := session.buildMenu()

	for {
		choice, err := session.ui.ChooseOption(m)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := m.Action(choice)(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			msg, ok := describeError(err)
			if !ok {
				return err
			}
			session.ui.Message(msg)
		}

		if strings.EqualFold(choice, quitKey) {
			return nil
		}
	}
}

type menuSession struct {
	store Store
	ui    *ui.UI
}

func (s *menuSession) buildMenu() *menu.Menu {
	m := menu.New()
	m.Add("1", "Add Book", s.addBook)
	m.Add("2", "Search For Book", s.searchBook)
	m.Add("3", "Show Unread Books", s.showBooksByReadStatus(false))
	m.Add("4", "Show Read Books", s.showBooksByReadStatus(true))
	m.Add("5", "Show All Books", s.showAllBooks)
	m.Add("6", "Change Book Read Status", s.changeReadStatus)
	m.Add("7", "Delete Book", s.deleteBook)
	m.Add(quitKey, "Quit", s.quit)
	return m
}

func (s *menuSession) addBook(ctx context.Context) error {
	book, err := s.ui.BookInfo()
	if err != nil {
		return err
	}
	if err := book.Save(ctx, s.store); err != nil {
		return err
	}
	s.ui.Message("Added: " + book.String())
	return nil
}

func (s *menuSession) searchBook(ctx context.Context) error {
	term, err := s.ui.Ask("Enter search term, will match partial authors or titles: ")
	if err != nil {
		return err
	}
	matches, err := s.store.Search(ctx, term)
	if err != nil {
		return err
	}
	s.ui.ShowBooks(matches)
	return nil
}

func (s *menuSession) showBooksByReadStatus(read bool) menu.Action {
	return func(ctx context.Context) error {
		found, err := s.store.GetByReadStatus(ctx, read)
		if err != nil {
			return err
		}
		s.ui.ShowBooks(found)
		return nil
	}
}

func (s *menuSession) showAllBooks(ctx context.Context) error {
	all, err := s.store.GetAll(ctx)
	if err != nil {
		return err
	}
	s.ui.ShowBooks(all)
	return nil
}

func (s *menuSession) changeReadStatus(ctx context.Context) error {
	id, err := s.ui.BookID()
	if err != nil {
		return err
	}
	book, found, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.ui.Message("No book with that ID.")
		return nil
	}

	read, err := s.ui.ReadStatus()
	if err != nil {
		return err
	}
	if err := s.store.SetReadStatus(ctx, book.ID, read); err != nil {
		return err
	}
	book.Read = read
	s.ui.Message("Updated: " + book.String())
	return nil
}

func (s *menuSession) deleteBook(ctx context.Context) error {
	id, err := s.ui.BookID()
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.ui.Message(fmt.Sprintf("Deleted book %d.", id))
	return nil
}

func (s *menuSession) quit(context.Context) error {
	s.ui.Message("Thanks and bye!")
	return nil
}
