package http

import (
	"context"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/config"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http/handler"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http/middleware"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
)

// Server is the Fiber HTTP server hosting the dashboard page and its API.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	dashboardHandler *handler.DashboardHandler
	sightingHandler  *handler.SightingHandler
	aggregateHandler *handler.AggregateHandler
}

// NewServer wires the middleware stack and routes.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metrics *observability.Metrics,
	dashboardHandler *handler.DashboardHandler,
	sightingHandler *handler.SightingHandler,
	aggregateHandler *handler.AggregateHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Seabirds Dashboard",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		dashboardHandler: dashboardHandler,
		sightingHandler:  sightingHandler,
		aggregateHandler: aggregateHandler,
	}

	s.setupMiddlewares(metrics)
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares(metrics *observability.Metrics) {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Metrics(metrics))
	s.app.Use(middleware.CORS(s.config.CORS.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Dashboard page
	s.app.Get("/", s.dashboardHandler.Render)

	// Sidebar image assets
	s.app.Static("/images", s.config.Data.ImagesDir)

	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus metrics
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Dataset metadata and filtered view
	api.Get("/meta", s.sightingHandler.GetMeta)
	api.Get("/sightings", s.sightingHandler.ListSightings)

	// Aggregates
	api.Get("/aggregates/species-totals", s.aggregateHandler.GetSpeciesTotals)
	api.Get("/aggregates/time-series", s.aggregateHandler.GetTimeSeries)
	api.Get("/aggregates/behavior", s.aggregateHandler.GetBehaviorTotals)
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown of the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
