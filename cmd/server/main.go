package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"productComposite/internal/config"
	"productComposite/internal/modules/composite/application/usecase"
	"productComposite/internal/modules/composite/infrastructure"
	transport "productComposite/internal/modules/composite/interface"
	"productComposite/internal/platform/broker"
	"productComposite/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	slog.SetDefault(logger)
	slog.Info("downstream config resolved",
		slog.String("product", cfg.Product.URL()),
		slog.String("recommendation", cfg.Recommendation.URL()),
		slog.String("review", cfg.Review.URL()),
	)
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers))

	publisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers)
	dispatcher := infrastructure.NewDispatcher(publisher, cfg.Dispatch.Workers, cfg.Dispatch.QueueDepth)
	integration := infrastructure.NewCompositeIntegration(
		dispatcher,
		cfg.Product.URL(),
		cfg.Recommendation.URL(),
		cfg.Review.URL(),
		cfg.REST.Timeout,
		nil,
	)
	compositeUC := usecase.NewCompositeUseCase(integration, cfg.Server.ServiceAddress)

	e := echo.New()
	e.HideBanner = true
	transport.NewCompositeHandler(compositeUC).Register(e)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("server shutdown error", slog.Any("error", err))
	}
	dispatcher.Close()
	if err := publisher.Close(); err != nil {
		slog.Warn("publisher close error", slog.Any("error", err))
	}
}
