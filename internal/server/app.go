// Package server initializes and runs the API server process. It opens the
// database and broker connections, wires repositories, services, and the
// HTTP surface together, and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/clients"
	"github.com/avolkov/dogshelter/internal/server/config"
	"github.com/avolkov/dogshelter/internal/server/httpapi"
	"github.com/avolkov/dogshelter/internal/server/repositories/repomanager"
	"github.com/avolkov/dogshelter/internal/server/services"
	"github.com/avolkov/dogshelter/internal/staging"
	"github.com/avolkov/dogshelter/internal/status"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	queueClient *asynq.Client
	statusStore *status.RedisStore
	httpServer  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger()

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.BrokerAddr})
	scheduler := staging.NewScheduler(queueClient, cfg.Stages, cfg.StagingInterval, cfg.TaskMaxRetry)

	statusStore := status.NewRedisStore(redis.NewClient(&redis.Options{
		Addr: cfg.StatusAddr,
		DB:   cfg.StatusDB,
	}))

	userService, err := services.NewUserService(db, rm, cfg)
	if err != nil {
		return nil, fmt.Errorf("user service init error: %w", err)
	}

	images := clients.NewImageClient(cfg.RandomImageURL, cfg.ClientTimeout)
	dogService := services.NewDogService(db, rm, images, scheduler, logger)

	var uploader clients.Uploader
	if cfg.UploadBackend == "s3" {
		uploader = clients.NewS3Uploader(cfg)
	} else {
		uploader = clients.NewHTTPUploader(cfg.UploadURL, cfg.ClientTimeout)
	}

	httpServer := httpapi.NewServer(cfg.EndpointAddr, logger, userService, dogService, statusStore, uploader)

	return &App{
		config:      cfg,
		logger:      logger,
		db:          db,
		queueClient: queueClient,
		statusStore: statusStore,
		httpServer:  httpServer,
	}, nil
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	app.Close(ctx)
}

// Close releases the database, broker, and status-store connections.
func (app *App) Close(ctx context.Context) {
	if err := app.queueClient.Close(); err != nil {
		app.logger.Error(ctx, "closing queue client", "error", err.Error())
	}
	if err := app.statusStore.Close(); err != nil {
		app.logger.Error(ctx, "closing status store", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db", "error", err.Error())
	}
}
