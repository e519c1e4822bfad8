package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"laurus/internal/shared/config"
	"laurus/internal/shared/log"
	"laurus/internal/shared/telemetry"
)

func main() {
	logger := log.New(log.Config{})

	if err := run(logger); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	// Missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	shutdownTelemetry := func(context.Context) error { return nil }
	if cfg.Telemetry.Enabled {
		shutdownTelemetry, err = telemetry.Init(context.Background(), telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  os.Getenv("ENVIRONMENT"),
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  cfg.Telemetry.MetricsPort,
		}, logger.WithComponent("telemetry"))
		if err != nil {
			return err
		}
	}

	deps, err := NewDependencies(cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	handler := SetupRoutes(deps, cfg, logger)
	srv, redirectSrv := StartServers(NewServerConfigFromConfig(handler, cfg), logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	GracefulShutdown(srv, redirectSrv, logger, 30*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownTelemetry(ctx); err != nil {
		logger.Error("telemetry shutdown error", "error", err)
	}

	return nil
}
