package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErikSvanes/flashcards/internal/adapter"
	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/service"
	"github.com/ErikSvanes/flashcards/internal/store"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// App holds the state of one client session.
type App struct {
	build BuildInfo

	// overrides carries configuration given on the command line.
	overrides config.StructuredConfig
	offline   bool

	logger        *logger.Logger
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	closers       []func() error
	started       bool

	bootstrap func(ctx context.Context, app *App) error
}

func NewApp(build BuildInfo) *App {
	return &App{
		build:     build,
		logger:    logger.Nop(),
		bootstrap: bootstrapServices,
	}
}

// Run implements [Client].
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	// PersistentPostRunE is skipped when a command fails.
	err := cmd.ExecuteContext(ctx)
	return errors.Join(err, a.close(ctx))
}

func bootstrapServices(ctx context.Context, a *App) error {
	cfg, err := config.GetClientConfig(&a.overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	a.logger = logger.NewClientLogger("flashcards-client", cfg.LogFile)

	localStorage, err := store.NewSQLiteLocalStorage(ctx, cfg.Storage.DSN, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	a.closers = append(a.closers, localStorage.Close)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	a.serverAdapter = serverAdapter
	a.services = service.NewClientServices(localStorage, serverAdapter, cfg.Workers, a.logger)
	return nil
}

// open builds the services, restores the saved login and, unless offline,
// starts the sync engine.
func (a *App) open(ctx context.Context) (context.Context, error) {
	if err := a.bootstrap(ctx, a); err != nil {
		return ctx, err
	}
	ctx = a.logger.WithContext(ctx)

	session, err := a.services.AuthService.RestoreSession(ctx)
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		a.logger.Debug().Msg("no saved session, working locally")
	case err != nil:
		return ctx, fmt.Errorf("restore session: %w", err)
	default:
		a.logger.Debug().Str("user_id", session.UserID).Msg("session restored")
	}

	if !a.offline {
		a.services.SyncEngine.Start(ctx)
		a.started = true
	}
	return ctx, nil
}

// close stops the engine, which pushes pending changes, and releases the
// local store.
func (a *App) close(ctx context.Context) error {
	if a.started {
		a.services.SyncEngine.Stop(ctx)
		a.started = false
	}

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
