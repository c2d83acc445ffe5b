// Package app wires the service together and runs it.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/mq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App is a fully wired shortener instance.
type App struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	repo     repositories
	kv       kv.Store
	dbPool   db.Database
	producer *mq.StatsProducer
	consumer *mq.StatsConsumer
}

// New loads the configuration and builds every dependency.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app, err := build(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

// Run starts the service and blocks until SIGINT or SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start(ctx)
}

// Close releases every connection the App holds.
func (a *App) Close() {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.Warn("failed to close stats producer", zap.Error(err))
		}
	}
	if a.consumer != nil {
		if err := a.consumer.Close(); err != nil {
			a.logger.Warn("failed to close stats consumer", zap.Error(err))
		}
	}
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.logger.Warn("failed to close key-value store", zap.Error(err))
		}
	}
	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("database connection closed")
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
