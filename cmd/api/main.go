package main

// @title Seabirds Dashboard API
// @version 1.0.0
// @description Interactive dashboard for exploring seabird sightings off South Africa.
// @description
// @description The service loads a semicolon-delimited sighting dataset once per process
// @description and exposes the filter-to-aggregate pipeline as a JSON API: the filtered
// @description data view, per-species totals over the entire dataset, a per-period time
// @description series and flying-vs-sitting behavior totals. A server-rendered page at /
// @description drives the charts and the basemap view from this API.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/BubeleRasmeni/seabirds-dashboard/docs"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/config"
	httpDelivery "github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http/handler"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/logger"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/repository/csvfile"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Seabirds Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_file", cfg.Data.File),
	)

	// 3. Load the sighting dataset. A malformed file is fatal: the whole
	// page depends on it and there is no partial-load recovery.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sightingRepo := csvfile.NewSightingRepository(cfg.Data.File, log)
	if err := sightingRepo.Health(ctx); err != nil {
		log.Fatal("Failed to load sighting dataset", zap.Error(err))
	}

	sightings, err := sightingRepo.GetAll(ctx)
	if err != nil {
		log.Fatal("Failed to read sighting dataset", zap.Error(err))
	}
	species, err := sightingRepo.GetSpecies(ctx)
	if err != nil {
		log.Fatal("Failed to read species list", zap.Error(err))
	}

	// 4. Metrics
	metrics := observability.NewMetrics()
	metrics.DatasetRows.Set(float64(len(sightings)))
	metrics.DatasetSpecies.Set(float64(len(species)))

	// 5. Initialize Use Cases
	filterUC := usecase.NewFilterUseCase(sightingRepo, log, dto.DataSource{
		Name: cfg.Data.SourceName,
		URL:  cfg.Data.SourceURL,
	})
	aggregateUC := usecase.NewAggregateUseCase(sightingRepo, filterUC, log, metrics)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	dashboardHandler, err := handler.NewDashboardHandler(cfg)
	if err != nil {
		log.Fatal("Failed to parse dashboard templates", zap.Error(err))
	}
	sightingHandler := handler.NewSightingHandler(filterUC, log)
	aggregateHandler := handler.NewAggregateHandler(aggregateUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		metrics,
		dashboardHandler,
		sightingHandler,
		aggregateHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
