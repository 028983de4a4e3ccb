// Command generate_demo creates a demo reading list with public domain books.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/readinglist/internal/database"
	"github.com/mrlokans/readinglist/internal/database/books"
	"github.com/mrlokans/readinglist/internal/entities"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	db, err := createDemoDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	created, err := seed(context.Background(), books.NewStore(db.DB), publicDomainBooks())
	if err != nil {
		log.Fatalf("Failed to seed demo database: %v", err)
	}

	log.Printf("Demo database generated successfully with %d books!", created)
}

// createDemoDatabase starts from an empty file so demo ids always begin at 1.
func createDemoDatabase(dbPath string) (*database.Database, error) {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to remove existing demo database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create demo database directory: %w", err)
	}

	opts := database.DefaultOptions()
	opts.LogLevel = logger.Silent
	return database.NewDatabase(dbPath, opts)
}

func seed(ctx context.Context, store *books.Store, demoBooks []entities.Book) (int, error) {
	created := 0
	for i := range demoBooks {
		book := &demoBooks[i]
		if _, err := store.Add(ctx, book); err != nil {
			return created, err
		}
		created++
		log.Printf("Saved: %s", book)
	}
	return created, nil
}

func publicDomainBooks() []entities.Book {
	return []entities.Book{
		entities.NewBook("Meditations", "Marcus Aurelius", true),
		entities.NewBook("Letters from a Stoic", "Seneca", true),
		entities.NewBook("On the Origin of Species", "Charles Darwin", false),
		entities.NewBook("Pride and Prejudice", "Jane Austen", true),
		entities.NewBook("War and Peace", "Leo Tolstoy", false),
		entities.NewBook("Crime and Punishment", "Fyodor Dostoevsky", true),
		entities.NewBook("The Republic", "Plato", false),
		entities.NewBook("The Art of War", "Sun Tzu", true),
		entities.NewBook("Frankenstein", "Mary Shelley", false),
		entities.NewBook("The Picture of Dorian Gray", "Oscar Wilde", false),
	}
}
