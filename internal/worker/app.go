// Package worker runs the staging worker process: an asynq server consuming
// delayed stage tasks and recording progress in the status store.
package worker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/avolkov/dogshelter/internal/logging"
	"github.com/avolkov/dogshelter/internal/server/config"
	"github.com/avolkov/dogshelter/internal/staging"
	"github.com/avolkov/dogshelter/internal/status"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	srv         *asynq.Server
	statusStore *status.RedisStore
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger()

	statusStore := status.NewRedisStore(redis.NewClient(&redis.Options{
		Addr: cfg.StatusAddr,
		DB:   cfg.StatusDB,
	}))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.BrokerAddr},
		asynq.Config{
			Concurrency: 10,
			Queues:      map[string]int{staging.QueueName: 1},
		},
	)

	return &App{
		config:      cfg,
		logger:      logger,
		srv:         srv,
		statusStore: statusStore,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting worker...")

	app.initSignalHandler(cancelFunc)

	handler := staging.NewHandler(app.statusStore, app.logger)

	mux := asynq.NewServeMux()
	mux.HandleFunc(staging.TypeAdvanceStage, handler.HandleAdvanceStage)

	if err := app.srv.Start(mux); err != nil {
		return err
	}

	<-ctx.Done()

	app.logger.Info(ctx, "Stopping worker...")
	app.srv.Shutdown()

	if err := app.statusStore.Close(); err != nil {
		app.logger.Error(ctx, "closing status store", "error", err.Error())
	}

	return nil
}
