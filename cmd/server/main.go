package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Cubey2019/insight-vtc-api/internal/adapter/cache"
	httpRouter "github.com/Cubey2019/insight-vtc-api/internal/adapter/http"
	"github.com/Cubey2019/insight-vtc-api/internal/adapter/repository"
	"github.com/Cubey2019/insight-vtc-api/internal/config"
	"github.com/Cubey2019/insight-vtc-api/internal/metrics"
	"github.com/Cubey2019/insight-vtc-api/internal/service"
	"github.com/Cubey2019/insight-vtc-api/pkg/logger"
)

func main() {
	envFile := flag.String("c", ".env", "Path to an optional dotenv configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting VTC rate service", "ticker_url", cfg.Ticker.URL, "provider", cfg.Ticker.Provider, "ttl", cfg.Cache.TTL)

	server := newServer(cfg, log, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}

// newServer wires the ticker client, rate cache, service and routes.
func newServer(cfg *config.Config, log *logger.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *http.Server {
	appMetrics := metrics.NewMetrics(reg)

	ticker := repository.NewTickerAPI(cfg.Ticker.URL, cfg.Ticker.Timeout, log.With("component", "ticker"))
	rateCache := cache.NewMemoryCache(ticker, cfg.Cache.TTL, log.With("component", "cache"), cache.WithMetrics(appMetrics))
	currencyService := service.NewCurrencyService(rateCache, cfg.Ticker.Provider, log)

	handler := httpRouter.NewHandler(currencyService, log)
	router := httpRouter.NewRouter(handler, log, appMetrics, gatherer)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}
