package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/NovatecConsulting/library-service-go/api"
	"github.com/NovatecConsulting/library-service-go/collection"
	"github.com/NovatecConsulting/library-service-go/config"
	"github.com/NovatecConsulting/library-service-go/storage/postgresengine"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("service failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()

	poolConfig, err := config.PostgresPGXPoolConfig(cfg.PostgresDSN)
	if err != nil {
		return err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return err
	}
	defer pool.Close()

	bookStore, err := postgresengine.NewBookStoreFromPGXPool(pool, postgresengine.WithLogger(logger))
	if err != nil {
		return err
	}

	eventLog, err := postgresengine.NewEventLogFromPGXPool(pool, postgresengine.WithEventLogLogger(logger))
	if err != nil {
		return err
	}

	clock := collection.SystemClock{}
	bookCollection := collection.NewBookCollection(
		clock,
		bookStore,
		collection.NewBookIDGenerator(bookStore),
		eventLog,
	)

	handler := api.NewBooksHandler(bookCollection, clock, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("library service listening", "addr", cfg.HTTPAddr)

		if serveErr := server.ListenAndServe(); !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(ctx)
}
