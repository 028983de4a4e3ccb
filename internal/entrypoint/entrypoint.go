package entrypoint

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/mrlokans/readinglist/internal/cli"
	"github.com/mrlokans/readinglist/internal/config"
	"github.com/mrlokans/readinglist/internal/database"
	"github.com/mrlokans/readinglist/internal/database/books"
)

// OpenStore opens the reading list configured in cfg. The returned close
// function releases the database.
func OpenStore(cfg *config.Config) (*books.Store, func() error, error) {
	opts := database.Options{
		BusyTimeout: cfg.Database.BusyTimeout,
		LogLevel:    database.ParseLogLevel(cfg.Database.LogLevel),
	}
	db, err := database.Open(cfg.Database.Path, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return books.NewStore(db.DB), db.Close, nil
}

// Run opens the store, runs cmd against it and closes the store again.
// SIGINT and SIGTERM cancel the command's context.
func Run(cfg *config.Config, version string, cmd cli.Command) error {
	log.Printf("Starting reading list v%s, database %s", version, cfg.Database.Path)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := OpenStore(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	return cmd.Run(ctx, store)
}
