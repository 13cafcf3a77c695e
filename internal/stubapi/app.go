package stubapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/addressbook/internal/logging"
)

// App runs the stub API as a standalone HTTP server.
type App struct {
	config *Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *Config, logger logging.Logger) *App {
	api := New([]byte(c.SecretKey), WithLogger(logger))
	return &App{
		config: c,
		logger: logger,
		server: &http.Server{Addr: c.Addr, Handler: api.Router()},
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// shuts the server down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "stub API listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	app.logger.Info(ctx, "shutting down")
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
