package entrypoint

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/readinglist/internal/cli"
	"github.com/mrlokans/readinglist/internal/config"
	"github.com/mrlokans/readinglist/internal/entities"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Database: config.Database{
			Path:        filepath.Join(t.TempDir(), "reading-list.db"),
			BusyTimeout: time.Second,
			LogLevel:    "silent",
		},
	}
}

func TestOpenStore_SharesDataForSamePath(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, closeFirst, err := OpenStore(cfg)
	require.NoError(t, err)
	defer closeFirst()

	second, _, err := OpenStore(cfg)
	require.NoError(t, err)

	book := entities.NewBook("Dune", "Herbert", false)
	_, err = first.Add(ctx, &book)
	require.NoError(t, err)

	found, err := second.ExistsExact(ctx, book)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	add := cli.NewAddCommand(&bytes.Buffer{})
	require.NoError(t, add.ParseFlags([]string{"-title", "Dune", "-author", "Herbert"}))
	require.NoError(t, Run(cfg, "test", add))

	out := &bytes.Buffer{}
	list := cli.NewListCommand(out)
	require.NoError(t, list.ParseFlags(nil))
	require.NoError(t, Run(cfg, "test", list))

	assert.Contains(t, out.String(), "ID 1, Title: Dune, Author: Herbert. You have not read this book.")
}

func TestRun_InvalidPath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = ""

	err := Run(cfg, "test", cli.NewListCommand(&bytes.Buffer{}))
	assert.Error(t, err)
}
