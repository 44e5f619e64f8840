package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osmundr/GielinorBot_Go/internal/config"
	"github.com/osmundr/GielinorBot_Go/internal/droptable"
	"github.com/osmundr/GielinorBot_Go/internal/prices"
	"github.com/osmundr/GielinorBot_Go/internal/rps"
	"github.com/osmundr/GielinorBot_Go/internal/scheduler"
	"github.com/osmundr/GielinorBot_Go/internal/server"
	"github.com/osmundr/GielinorBot_Go/internal/simulation"
	"github.com/osmundr/GielinorBot_Go/internal/wiki"
	"github.com/osmundr/GielinorBot_Go/internal/worker"
)

const (
	workerCount     = 2
	workerQueueSize = 16
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	// Drop table acquisition pipeline
	wikiClient := wiki.NewClient(cfg.WikiAPIURL, cfg.UserAgent)
	parser := droptable.NewParser()
	catalog := droptable.NewFallbackCatalog()
	cache := droptable.NewCache(cfg.DropTableCacheSize, cfg.DropTableCacheTTL, time.Now)
	engine := simulation.NewEngine()

	dropTableService := droptable.NewService(wikiClient, parser, catalog, cache, engine, droptable.Options{})

	// Side games
	rpsService := rps.NewService()

	// Grand Exchange prices
	pricesClient := prices.NewClient(cfg.PricesAPIURL, cfg.UserAgent)
	pricesService := prices.NewService(pricesClient, config.DefaultPriceCacheSize, cfg.PriceCacheTTL)

	// Background cache sweeping
	pool := worker.NewPool(workerCount, workerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.CacheSweepInterval, worker.NewCacheSweepJob(cache))

	srv := server.NewServer(cfg.Port, cfg.APIKey, dropTableService, rpsService, pricesService)

	// Run the server until a signal arrives
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	sched.Stop()
	pool.Stop()

	slog.Info("Shutdown complete")
}
