package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/eventflow/internal/adapter/catalog"
	"github.com/srgjo27/eventflow/internal/adapter/handler"
	"github.com/srgjo27/eventflow/internal/adapter/payment"
	"github.com/srgjo27/eventflow/internal/adapter/repository/file"
	"github.com/srgjo27/eventflow/internal/adapter/repository/memory"
	"github.com/srgjo27/eventflow/internal/adapter/repository/postgres"
	redisstore "github.com/srgjo27/eventflow/internal/adapter/repository/redis"
	"github.com/srgjo27/eventflow/internal/core/ports"
	"github.com/srgjo27/eventflow/internal/core/pricing"
	"github.com/srgjo27/eventflow/internal/core/services"
	"github.com/srgjo27/eventflow/internal/platform/config"
	"github.com/srgjo27/eventflow/internal/platform/database"
	"github.com/srgjo27/eventflow/internal/platform/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	events := catalog.Builtin()
	if cfg.CatalogFile != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return err
		}
		events = loaded
		log.Info("catalog loaded", "path", cfg.CatalogFile)
	}

	store, closeStore, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	generator := pricing.NewGenerator(cfg.Inventory, nil)

	bookingService := services.NewBookingService(
		store,
		store,
		payment.NewSimulated(cfg.PaymentDelay),
		cfg.Discount,
		services.WithLogger(log),
	)

	sessions := handler.NewSessionRegistry()
	go sessions.RunCleanup(ctx, cfg.SessionTTL, log)

	h := handler.NewHandler(
		services.NewCatalogService(events),
		services.NewSeatingService(events, generator, cfg.Discount),
		bookingService,
		services.NewAdminService(store),
		sessions,
		log,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10*time.Second + cfg.PaymentDelay,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.HTTPAddr, "storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (ports.Storage, func(), error) {
	switch cfg.Storage {
	case config.StorageFile:
		dir := cfg.StorageDir
		if dir == "" {
			var err error
			if dir, err = file.DefaultDir(); err != nil {
				return nil, nil, err
			}
		}
		log.Info("using file storage", "dir", dir)
		return file.NewStore(dir), func() {}, nil

	case config.StorageRedis:
		log.Info("connecting to redis", "addr", cfg.Redis.Addr())
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info("redis connected")
		return redisstore.NewStore(client, cfg.Redis.Prefix), func() { client.Close() }, nil

	case config.StoragePostgres:
		db, err := database.NewPostgresDB(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return postgres.NewStore(db), func() { db.Close() }, nil

	default:
		return memory.NewStore(), func() {}, nil
	}
}
