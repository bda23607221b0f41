// Package server runs the development registry: it picks the asset storage
// backend, serves the registry gRPC API and shuts down on SIGINT, SIGTERM or
// SIGQUIT.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/config"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/repositories/assets"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/repositories/repomanager"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/services"

	gs "github.com/ProgrammedByHussain/LandLocks/internal/server/grpc"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	assetService *services.AssetService
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)
	return newApp(context.Background(), c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	app := &App{config: c, logger: logger}

	var repo assets.Repository
	if c.DatabaseDSN == "" {
		logger.Info(ctx, "No database DSN given, assets are kept in memory")
		repo = assets.NewInMemoryRepository()
	} else {
		m := repomanager.NewPostgresRepositoryManager()
		db, err := repomanager.Open(ctx, c.DatabaseDSN, m)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		repo = m.Assets(db)
	}

	app.assetService = services.NewAssetService(repo)
	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.assetService, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled, a shutdown signal arrives or the
// server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(ctx, "closing database", "error", err)
		}
	}
	app.logger.Info(ctx, "App stopped")
}
