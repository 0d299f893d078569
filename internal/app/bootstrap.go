package app

import (
	"context"
	"errors"

	"faden/internal/app/board"
	"faden/internal/app/health"
	"faden/internal/app/post"
	"faden/internal/config"
	"faden/internal/db"
	"faden/internal/db/seeder"
	"faden/internal/gateways/websocket"
	"faden/internal/metrics"
	"faden/internal/providers/redis"
	"faden/internal/router"
	"faden/internal/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Router   *router.Router
	DB       *gorm.DB
	Boards   board.Service
	Posts    post.Service
	Hub      *websocket.Hub
	Registry *prometheus.Registry

	redis  *redis.RedisProvider
	cancel context.CancelFunc
	logger *zap.Logger
}

// Bootstrap connects to PostgreSQL and redis (when configured), migrates the
// schema, seeds default boards and wires the HTTP surface.
func Bootstrap(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	dbConn, err := db.Connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, logger); err != nil {
		return nil, err
	}

	var redisProvider *redis.RedisProvider
	if cfg.RedisURL != "" {
		redisProvider = redis.NewRedisProvider(cfg.RedisURL, logger)
	} else {
		logger.Info("REDIS_URL not set, events stay in process")
	}

	application, err := Build(cfg, logger, dbConn, redisProvider)
	if err != nil {
		return nil, err
	}

	if cfg.SeedBoards {
		seed := seeder.NewSeeder(application.Boards, board.NewRepository(dbConn), logger)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.StoreTimeout)
		defer cancel()
		if err := seed.Seed(ctx); err != nil {
			logger.Warn("Failed to run seeders", zap.Error(err))
		}
	}

	return application, nil
}

// Build wires services, background workers and routes around an already
// migrated database. redisProvider may be nil.
func Build(cfg *config.Config, logger *zap.Logger, dbConn *gorm.DB, redisProvider *redis.RedisProvider) (*Application, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry, logger)
	if err := db.RegisterMetricsCallbacks(dbConn, appMetrics); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	eventBus := utils.NewEventBus(256)
	var publisher utils.Publisher = eventBus
	var redisClient *goredis.Client
	if redisProvider != nil {
		relay := redis.NewEventRelay(redisProvider, cfg.EventsChannel, eventBus, logger)
		publisher = relay
		redisClient = redisProvider.Client
		go func() {
			if err := relay.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Event relay stopped", zap.Error(err))
			}
		}()
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx, eventBus.SubscribeCh())

	boardRepo := board.NewRepository(dbConn)
	postRepo := post.NewRepository(dbConn)

	boardService := board.NewService(boardRepo, publisher, appMetrics, logger)
	postService := post.NewService(postRepo, boardService, publisher, appMetrics, logger)

	healthHandler := health.NewHandler(&utils.HealthChecker{
		DB:      dbConn,
		Redis:   redisClient,
		Timeout: cfg.StoreTimeout,
	})
	boardHandler := board.NewHandler(boardService)
	postHandler := post.NewHandler(postService)

	r := router.NewRouter(logger, router.Options{
		FrontendURL:  cfg.FrontendURL,
		StoreTimeout: cfg.StoreTimeout,
		Metrics:      appMetrics,
	})

	r.RegisterHealthRoutes(healthHandler)
	r.RegisterWebSocketRoutes(hub)
	r.RegisterBoardRoutes(boardHandler)
	r.RegisterPostRoutes(postHandler)
	r.RegisterMetricsRoutes(registry)
	r.RegisterSwaggerRoutes()

	return &Application{
		Router:   r,
		DB:       dbConn,
		Boards:   boardService,
		Posts:    postService,
		Hub:      hub,
		Registry: registry,
		redis:    redisProvider,
		cancel:   cancel,
		logger:   logger,
	}, nil
}

// Close stops background workers and releases the store and redis clients.
func (a *Application) Close() {
	a.cancel()

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.logger.Warn("Failed to close database", zap.Error(err))
		}
	}
}
