// Package server initializes and runs the auth backend: it picks the
// credential store, wires the password hasher and token service into the
// user service, and starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kshitij230106/weather-dashboard-backend/internal/cryptox"
	"github.com/kshitij230106/weather-dashboard-backend/internal/logging"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/auth"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/config"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/httpapi"
	"github.com/kshitij230106/weather-dashboard-backend/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	hasher := cryptox.NewBcryptHasher(cfg.BcryptCost)
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenValidityDuration)
	us := users.NewService(store, hasher, tokens)

	return &App{config: cfg, logger: logger, userService: us}, nil
}

// newStore selects the credential store: Postgres when a DSN is configured,
// otherwise the JSON file store.
func newStore(ctx context.Context, cfg *config.Config) (users.Store, error) {
	if cfg.DatabaseDSN != "" {
		db, err := users.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return users.NewPostgresStore(db), nil
	}
	return users.NewFileStore(cfg.UsersFile), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.config.CORSOrigin)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
