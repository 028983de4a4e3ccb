package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/readinglist/internal/cli"
	"github.com/mrlokans/readinglist/internal/database/books"
	"github.com/mrlokans/readinglist/internal/entities"
	"github.com/mrlokans/readinglist/internal/exporters"
	"github.com/mrlokans/readinglist/internal/importers"
)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ entities.Saver = (*books.Store)(nil)
var _ cli.Store = (*books.Store)(nil)
var _ importers.Adder = (*books.Store)(nil)

// =============================================================================
// Exporters
// =============================================================================

var _ exporters.BookExporter = (*exporters.MarkdownExporter)(nil)
var _ exporters.BookExporter = (*exporters.JSONExporter)(nil)

// =============================================================================
// Commands
// =============================================================================

var _ cli.Command = (*cli.MenuCommand)(nil)
var _ cli.Command = (*cli.ListCommand)(nil)
var _ cli.Command = (*cli.SearchCommand)(nil)
var _ cli.Command = (*cli.AddCommand)(nil)
var _ cli.Command = (*cli.MarkCommand)(nil)
var _ cli.Command = (*cli.DeleteCommand)(nil)
var _ cli.Command = (*cli.ExportCommand)(nil)
var _ cli.Command = (*cli.ImportCommand)(nil)
