package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/readinglist/internal/database"
	"github.com/mrlokans/readinglist/internal/database/books"
	"github.com/mrlokans/readinglist/internal/entities"
)

func setupTestStore(t *testing.T) *books.Store {
	t.Helper()
	opts := database.DefaultOptions()
	opts.LogLevel = logger.Silent
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "cli.db"), opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return books.NewStore(db.DB)
}

func seedBooks(t *testing.T, store *books.Store, seed ...entities.Book) []entities.Book {
	t.Helper()
	for i := range seed {
		_, err := store.Add(context.Background(), &seed[i])
		require.NoError(t, err)
	}
	return seed
}
