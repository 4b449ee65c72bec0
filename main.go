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

	"restaurant-orders-api/config"
	"restaurant-orders-api/handlers"
	"restaurant-orders-api/routes"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}
	if cfg.SeedFile != "" {
		seed, err := store.LoadSeed(cfg.SeedFile)
		if err != nil {
			return err
		}
		if err := store.ApplySeed(ctx, repo, seed); err != nil {
			return err
		}
		logger.Info("seed data loaded",
			zap.String("file", cfg.SeedFile),
			zap.Int("dishes", len(seed.Dishes)),
			zap.Int("orders", len(seed.Orders)),
		)
	}

	r := routes.NewRouter(handlers.New(repo, logger), logger)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("server running", zap.String("addr", "http://localhost:"+cfg.Port), zap.String("store", cfg.StoreDriver))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func openRepository(cfg config.Config) (store.Repository, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemory(), nil
	case config.DriverSQLite:
		db, err := config.OpenDB(cfg.DatabasePath)
		if err != nil {
			return nil, err
		}
		g, err := store.NewGorm(db)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
