// Package cli implements the interactive shell of the clientnotes tracker.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/dmitrijs2005/clientnotes/internal/config"
	"github.com/dmitrijs2005/clientnotes/internal/filex"
	"github.com/dmitrijs2005/clientnotes/internal/legacy"
	"github.com/dmitrijs2005/clientnotes/internal/logging"
	"github.com/dmitrijs2005/clientnotes/internal/models"
	"github.com/dmitrijs2005/clientnotes/internal/repositories/records"
	"github.com/dmitrijs2005/clientnotes/internal/services"
	"github.com/dmitrijs2005/clientnotes/internal/view"
)

// App drives the REPL. The record cache is disposable and reloaded from the
// store after every mutation; the store is the only source of truth.
type App struct {
	config  *config.Config
	service services.RecordService
	log     logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer

	// current render state
	cache  []models.Record
	search string
	mode   view.Mode
	shown  view.View
}

// NewApp opens the store, runs the one-time legacy migration, and wires the
// service layer.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	db, err := records.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := records.NewSQLiteRepository(db)

	if err := legacy.ImportIfEmpty(ctx, repo, c.LegacyPath, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		service: services.NewRecordService(repo, log),
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		mode:    view.ModeAll,
	}, nil
}

// Run executes the REPL until the user exits, then releases the store.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()
	a.Root(ctx)
}

// refresh reloads the record set from the store and rebuilds the view with
// the current search text and filter mode.
func (a *App) refresh(ctx context.Context) error {
	recs, err := a.service.List(ctx)
	if err != nil {
		return err
	}
	a.cache = recs
	a.shown = view.Build(a.cache, a.search, a.mode, now())
	return nil
}

// item resolves a 1-based index into the currently displayed view.
func (a *App) item(n int) (*view.Item, bool) {
	if n < 1 || n > len(a.shown.Items) {
		return nil, false
	}
	return &a.shown.Items[n-1], true
}
