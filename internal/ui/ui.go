// Package ui prompts the user on a line-based terminal and renders books.
// Every prompt that validates its answer keeps asking until it gets a valid
// one; running out of input is reported as io.EOF.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mrlokans/readinglist/internal/entities"
	"github.com/mrlokans/readinglist/internal/menu"
)

type UI struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *UI {
	return &UI{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Message prints msg on its own line.
func (u *UI) Message(msg string) {
	fmt.Fprintln(u.out, msg)
}

// Ask prints question and returns the next line of input.
func (u *UI) Ask(question string) (string, error) {
	fmt.Fprint(u.out, question)
	if !u.in.Scan() {
		if err := u.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(u.in.Text()), nil
}

// ChooseOption shows the menu until the user enters one of its keys.
func (u *UI) ChooseOption(m *menu.Menu) (string, error) {
	for {
		u.Message(m.String())
		choice, err := u.Ask("Enter choice? ")
		if err != nil {
			return "", err
		}
		if m.IsValid(choice) {
			return choice, nil
		}
		u.Message("Not a valid choice, try again.")
	}
}

// BookInfo asks for a title and author and returns an unsaved, unread book.
func (u *UI) BookInfo() (entities.Book, error) {
	title, err := u.Ask("Enter book title: ")
	if err != nil {
		return entities.Book{}, err
	}
	author, err := u.Ask("Enter book author: ")
	if err != nil {
		return entities.Book{}, err
	}
	return entities.NewBook(title, author, false), nil
}

// BookID asks until the user enters a positive integer.
func (u *UI) BookID() (uint, error) {
	for {
		answer, err := u.Ask("Enter book ID: ")
		if err != nil {
			return 0, err
		}
		id, convErr := strconv.ParseInt(answer, 10, 64)
		switch {
		case convErr != nil:
			u.Message("Please enter a number.")
		case id <= 0:
			u.Message("Please enter a positive number.")
		default:
			return uint(id), nil
		}
	}
}

// ReadStatus asks until the user enters "read" or "not read".
func (u *UI) ReadStatus() (bool, error) {
	for {
		answer, err := u.Ask("Enter 'read' if book is read or 'not read' if book is not read: ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "read":
			return true, nil
		case "not read":
			return false, nil
		}
		u.Message("Type 'read' or 'not read'")
	}
}

// ShowBooks prints one book per line, framed by blank lines.
func (u *UI) ShowBooks(books []entities.Book) {
	WriteBooks(u.out, books)
}

// WriteBooks is ShowBooks for callers that have only a writer.
func WriteBooks(w io.Writer, books []entities.Book) {
	fmt.Fprintln(w)
	if len(books) == 0 {
		fmt.Fprintln(w, "No books to display")
	}
	for _, book := range books {
		fmt.Fprintln(w, book.String())
	}
	fmt.Fprintln(w)
}
