package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mohammadpnp/customer-orders/internal/bootstrap"
	"github.com/mohammadpnp/customer-orders/internal/config"
	infradb "github.com/mohammadpnp/customer-orders/internal/infrastructure/db"
	"github.com/mohammadpnp/customer-orders/internal/infrastructure/logging"
	"go.uber.org/zap"
)

const serviceName = "customer-orders"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(serviceName, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, closeDB, err := infradb.Open(ctx, infradb.Config{
		Driver:   cfg.DatabaseDriver,
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.DBMaxConns,
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to open database", zap.String("driver", cfg.DatabaseDriver), zap.Error(err))
	}
	defer closeDB()

	server := bootstrap.NewHTTPServer(db, bootstrap.ServerOptions{
		Logger:    logger,
		BodyLimit: cfg.BodyLimit,
	})

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Addr()), zap.String("driver", cfg.DatabaseDriver))
		if err := server.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
