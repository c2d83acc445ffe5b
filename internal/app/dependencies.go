package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avc-dev/shortlink/internal/bloom"
	"github.com/avc-dev/shortlink/internal/clock"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/idempotency"
	"github.com/avc-dev/shortlink/internal/kv"
	"github.com/avc-dev/shortlink/internal/lock"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/mq"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/session"
	"github.com/avc-dev/shortlink/internal/shortcode"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const localBusSize = 1024

type repositories interface {
	service.LinkRepository
	service.UserRepository
	service.StatsRepository
}

// build creates every component of the service from cfg. Whatever was
// opened before a failure is closed again.
func build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *App, err error) {
	app := &App{config: cfg, logger: logger}
	defer func() {
		if err != nil {
			app.Close()
		}
	}()

	if app.kv, err = initKV(ctx, cfg, logger); err != nil {
		return nil, fmt.Errorf("failed to initialize key-value store: %w", err)
	}

	linkFilter, err := initFilter(ctx, cfg, app.kv, bloom.LinksKey, cfg.Filter.LinkCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize link filter: %w", err)
	}
	userFilter, err := initFilter(ctx, cfg, app.kv, bloom.UsersKey, cfg.Filter.UserCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user filter: %w", err)
	}

	var adapter *db.DBAdapter
	if app.repo, adapter, err = initRepository(ctx, cfg, logger); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	if adapter != nil {
		app.dbPool = adapter
	}

	ids, err := service.NewSnowflakeIDs(cfg.NodeID)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := mq.NewMetrics(registry)

	writer, reader := initTransport(cfg, logger)
	app.producer = mq.NewStatsProducer(writer, metrics, logger)
	stats := service.NewStatsService(app.repo, logger)
	guard := idempotency.NewGuard(app.kv, cfg.Idempotency.TTL)
	app.consumer = mq.NewStatsConsumer(reader, guard, stats.Record, metrics, logger)

	sessions := session.NewStore(app.kv, cfg.Session.InitialTTL, cfg.Session.RefreshTTL)
	links := service.NewLinkService(
		app.repo,
		linkFilter,
		shortcode.NewGenerator(linkFilter, clock.Real{}),
		ids,
		app.producer,
		logger,
	)
	users := service.NewUserService(
		app.repo,
		userFilter,
		lock.NewLocker(app.kv, cfg.Lock.TTL),
		sessions,
		ids,
		logger,
	)

	if cfg.Filter.Preload {
		if err := warmUp(ctx, links, users, logger); err != nil {
			return nil, err
		}
	}

	// a nil *DBAdapter must not become a non-nil Pinger
	var pinger handler.Pinger
	if adapter != nil {
		pinger = adapter
	}
	h := handler.New(links, users, logger, pinger, cfg.BaseURL)

	app.server = &http.Server{
		Addr:    cfg.ServerAddress.String(),
		Handler: newRouter(h, sessions, registry, logger),
	}

	return app, nil
}

func initKV(ctx context.Context, cfg *config.Config, logger *zap.Logger) (kv.Store, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("using in-process key-value store")
		return kv.NewMemoryStore(clock.Real{}), nil
	}

	store, err := kv.Connect(ctx, kv.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		return nil, err
	}
	logger.Info("using redis key-value store", zap.String("addr", cfg.Redis.Addr))
	return store, nil
}

func initFilter(ctx context.Context, cfg *config.Config, store kv.Store, key string, capacity uint64) (bloom.Filter, error) {
	sizing := bloom.Sizing{
		ExpectedInsertions: capacity,
		FalsePositiveRate:  cfg.Filter.FalsePositiveRate,
	}

	if cfg.Filter.Backend == config.FilterBackendMemory {
		return bloom.NewMemoryFilter(sizing)
	}

	redisStore, ok := store.(*kv.RedisStore)
	if !ok {
		return nil, errors.New("redis filter backend without a redis store")
	}

	switch cfg.Filter.Backend {
	case config.FilterBackendBitmap:
		return bloom.NewRedisBitmapFilter(redisStore.Client(), key, sizing)
	case config.FilterBackendRedisBloom:
		return bloom.NewRedisBloomFilter(ctx, redisStore.Client(), key, sizing)
	default:
		return nil, fmt.Errorf("unknown filter backend %q", cfg.Filter.Backend)
	}
}

func initRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories, *db.DBAdapter, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("using in-memory storage")
		return repository.NewMemory(), nil, nil
	}

	adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, err
	}

	migrator := migrations.NewMigrator(adapter.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		adapter.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	version, dirty, err := migrator.GetVersion()
	if err != nil {
		adapter.Close()
		return nil, nil, fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		adapter.Close()
		return nil, nil, fmt.Errorf("schema version %d is dirty", version)
	}
	logger.Info("database schema is up to date", zap.Uint("version", version))

	logger.Info("using database storage")
	return repository.NewPostgres(adapter.Pool), adapter, nil
}

func initTransport(cfg *config.Config, logger *zap.Logger) (mq.MessageWriter, mq.MessageReader) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("handling stats messages in process")
		bus := mq.NewLocalBus(localBusSize)
		return bus, bus
	}

	logger.Info("using kafka for stats messages",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
	)
	return mq.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic),
		mq.NewKafkaReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID)
}

func warmUp(ctx context.Context, links *service.LinkService, users *service.UserService, logger *zap.Logger) error {
	linkCount, err := links.WarmUp(ctx)
	if err != nil {
		return err
	}
	userCount, err := users.WarmUp(ctx)
	if err != nil {
		return err
	}

	logger.Info("existence filters preloaded",
		zap.Int("links", linkCount),
		zap.Int("users", userCount),
	)
	return nil
}
