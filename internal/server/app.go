// Package server initializes and runs the credential service. It opens the
// database, applies migrations, wires the hashing scheme and repositories
// into the credential service, handles graceful shutdown, and starts the
// gRPC endpoint.
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
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/dkazarov/libkeeper/internal/logging"
	"github.com/dkazarov/libkeeper/internal/password"
	"github.com/dkazarov/libkeeper/internal/server/config"
	"github.com/dkazarov/libkeeper/internal/server/repositories/repomanager"
	"github.com/dkazarov/libkeeper/internal/server/services"

	gs "github.com/dkazarov/libkeeper/internal/server/grpc"
)

type App struct {
	config            *config.Config
	logger            logging.Logger
	db                *sql.DB
	credentialService *services.CredentialService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := pingWithRetry(ctx, db); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	hasher, err := password.New(cfg.HashScheme)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	cs := services.NewCredentialService(db, rm, hasher)

	return &App{config: cfg, logger: logger, db: db, credentialService: cs}, nil
}

// pingWithRetry waits for the database to become reachable. Container
// setups often start the server before Postgres accepts connections.
func pingWithRetry(ctx context.Context, db *sql.DB) error {
	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.credentialService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
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
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

}
