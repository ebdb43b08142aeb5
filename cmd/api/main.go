package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/events"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/logger"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
	"github.com/zizouhuweidi/trivia/internal/service"
	"github.com/zizouhuweidi/trivia/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize question store
	repo, closeStore, err := openStore(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer closeStore()

	// Initialize websocket hub
	hub := websocket.NewHub(lg)
	go hub.Run(ctx)

	// Catalog events go through Redis when configured so every instance
	// relays them to its own websocket clients.
	var publisher domain.EventPublisher = events.NewLocalPublisher(hub)
	if cfg.Redis.Addr != "" {
		redisClient, err := database.ConnectRedis(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer redisClient.Close()

		publisher = events.NewRedisPublisher(redisClient, cfg.Redis.Channel)
		relay := events.NewRelay(redisClient, cfg.Redis.Channel, hub, lg)
		go func() {
			if err := relay.Run(ctx); err != nil {
				lg.Error("event relay stopped", zap.Error(err))
			}
		}()
		lg.Info("redis event fan-out enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// Initialize services
	triviaService := service.NewTriviaService(repo, service.Options{
		PageSize: cfg.Pagination.PageSize,
		Events:   publisher,
		Logger:   lg,
	})

	e := handler.NewRouter(handler.RouterConfig{
		AllowOrigins: cfg.CORS.AllowOrigins,
		Logger:       lg,
	}, triviaService, hub)

	// Start server
	serverErr := make(chan error, 1)
	go func() {
		lg.Info("http server starting", zap.String("addr", cfg.HTTP.Addr), zap.String("store", cfg.Store.Driver))
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, lg *zap.Logger) (domain.QuestionRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, database.PostgresConfig{
			URL:             cfg.DB.URL,
			Host:            cfg.DB.Host,
			Port:            cfg.DB.Port,
			User:            cfg.DB.User,
			Password:        cfg.DB.Password,
			DBName:          cfg.DB.Name,
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigratePostgres(ctx, pool, cfg.Store.Seed); err != nil {
			pool.Close()
			return nil, nil, err
		}
		lg.Info("connected to postgres")
		return postgres.NewQuestionRepository(pool), pool.Close, nil

	case config.DriverSQLite:
		db, err := database.ConnectSQLite(cfg.SQLite.Path, cfg.Store.Seed)
		if err != nil {
			return nil, nil, err
		}
		lg.Info("opened sqlite database", zap.String("path", cfg.SQLite.Path))
		return sqlite.NewQuestionRepository(db), func() { _ = db.Close() }, nil

	default:
		var categories []domain.Category
		if cfg.Store.Seed {
			categories = database.DefaultCategories()
		}
		lg.Warn("using in-memory store, questions are lost on restart")
		return memory.NewQuestionRepository(categories, nil), func() {}, nil
	}
}
