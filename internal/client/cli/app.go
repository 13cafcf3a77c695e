package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/addressbook/internal/client/client"
	"github.com/dmitrijs2005/addressbook/internal/client/config"
	"github.com/dmitrijs2005/addressbook/internal/client/directory"
	"github.com/dmitrijs2005/addressbook/internal/client/models"
	"github.com/dmitrijs2005/addressbook/internal/client/services"
	"github.com/dmitrijs2005/addressbook/internal/client/storage"
	"github.com/dmitrijs2005/addressbook/internal/filex"
	"github.com/dmitrijs2005/addressbook/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	log    logging.Logger
	store  storage.Store

	authService       services.AuthService
	sessionService    services.SessionService
	favouritesService services.FavouritesService
	directoryService  services.DirectoryService

	session services.Session
	entries []models.DirectoryEntry
	query   directory.Query
	Mode    Mode

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the configured store, builds the API client and wires the
// services on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	opts := storage.Options{
		Backend:       c.Storage,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		RedisPrefix:   c.RedisPrefix,
	}
	if c.Storage == storage.BackendSQLite || c.Storage == "" {
		path, err := filex.DataFile(c.DataDir, c.DatabaseFile)
		if err != nil {
			return nil, fmt.Errorf("data dir: %w", err)
		}
		opts.SQLitePath = path
	}

	store, err := storage.Open(ctx, opts)
	if err != nil {
		log.Error(ctx, "error opening storage", "backend", c.Storage, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return newApp(c, store, apiClient, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, store storage.Store, api client.Client, log logging.Logger, in io.Reader, out io.Writer) *App {
	sessions := services.NewSessionService(store, log)
	return &App{
		config:            c,
		log:               log,
		store:             store,
		authService:       services.NewAuthService(api, sessions, log),
		sessionService:    sessions,
		favouritesService: services.NewFavouritesService(store, log),
		directoryService:  services.NewDirectoryService(api, log),
		query:             directory.Query{Key: directory.DefaultFilterKey},
		reader:            bufio.NewReader(in),
		out:               out,
		now:               time.Now,
	}
}

// Run drives the shell until the user exits, then closes the store.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.log.Warn(ctx, "error closing storage", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "switched mode", "mode", mode)
	}
}

// callCtx bounds a single storage or API call by the configured timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.config == nil || a.config.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
