package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloud-ru/rent-vs-buy-go/internal/config"
	"github.com/cloud-ru/rent-vs-buy-go/internal/logging"
	"github.com/cloud-ru/rent-vs-buy-go/internal/server"
	"github.com/cloud-ru/rent-vs-buy-go/internal/tools"
	"github.com/cloud-ru/rent-vs-buy-go/internal/tracing"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.NewLogger(cfg)

	tracer, shutdownTracing, err := tracing.InitTracing(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to init tracing: %v", err)
	}

	registry := tools.NewRegistry(cfg, tracer)
	srv := server.New(cfg, registry, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			logger.WithError(err).Error("server stopped")
		}
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server shutdown")
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.WithError(err).Error("tracing shutdown")
	}
}
