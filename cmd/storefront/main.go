package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/storefront/api/routes"
	"github.com/angelmondragon/storefront/internal/catalogsource"
	"github.com/angelmondragon/storefront/internal/storefront"
	"github.com/angelmondragon/storefront/pkg/config"
	"github.com/angelmondragon/storefront/pkg/logger"
	"github.com/angelmondragon/storefront/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	engineMetrics := metrics.NewEngineMetrics(registry)

	b, err := openBackend(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap persistence", err)
		os.Exit(1)
	}

	var remote catalogsource.Source
	if cfg.Catalog.BaseURL != "" {
		httpSource, err := catalogsource.NewHTTPSource(cfg.Catalog.BaseURL, nil, cfg.Catalog.Timeout)
		if err != nil {
			logg.Error(ctx, "invalid catalog api base", err)
			os.Exit(1)
		}
		remote = httpSource
	}

	session, err := storefront.NewSession(ctx, storefront.SessionParams{
		ID:          cfg.Persistence.SessionID,
		Adapter:     b.adapter,
		CartKey:     cfg.Persistence.CartKey,
		WishlistKey: cfg.Persistence.WishlistKey,
		Source:      catalogsource.NewFallbackSource(remote, logg, engineMetrics),
		Logger:      logg,
		Metrics:     engineMetrics,
		Closers:     b.closers,
	})
	if err != nil {
		logg.Error(ctx, "failed to start session", err)
		for _, c := range b.closers {
			_ = c.Close()
		}
		os.Exit(1)
	}
	host := storefront.NewHost(session)

	addr := ":" + cfg.App.Port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": cfg.Persistence.Driver,
	})
	logg.Info(ctx, "starting storefront server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, host, b.pingers, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "storefront server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "error shutting down server", err)
		exitCode = 1
	}
	if err := host.Close(); err != nil {
		logg.Error(ctx, "error closing session", err)
		exitCode = 1
	}
	logg.Info(ctx, "storefront server stopped")
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
