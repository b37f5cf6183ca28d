package http_test

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/config"
	httpDelivery "github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/delivery/http/handler"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

type stubRepository struct{}

func (s *stubRepository) GetAll(ctx context.Context) ([]domain.Sighting, error) {
	return []domain.Sighting{
		{
			CommonName: "African Penguin",
			Date:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Flying:     2,
			Sitting:    1,
			TotalCount: 3,
		},
	}, nil
}

func (s *stubRepository) GetSpecies(ctx context.Context) ([]string, error) {
	return []string{"African Penguin"}, nil
}

func (s *stubRepository) GetDateBounds(ctx context.Context) (*domain.DateBounds, error) {
	return &domain.DateBounds{
		Min: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Max: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func (s *stubRepository) Health(ctx context.Context) error {
	return nil
}

func newTestServer(t *testing.T) *httpDelivery.Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, Env: "test"},
		Data: config.DataConfig{
			File:       "data/seabird_atlas.csv",
			ImagesDir:  t.TempDir(),
			SourceName: "The Atlas of Seabirds at Sea (AS@S)",
			SourceURL:  "http://seabirds.saeon.ac.za/",
		},
		Map: config.MapConfig{CenterLat: -30, CenterLon: 22, Zoom: 5},
		Log: config.LogConfig{Level: "error"},
	}

	logger := zap.NewNop()
	metrics := observability.NewMetricsForTesting()
	repo := &stubRepository{}

	filterUC := usecase.NewFilterUseCase(repo, logger, dto.DataSource{
		Name: cfg.Data.SourceName,
		URL:  cfg.Data.SourceURL,
	})
	aggregateUC := usecase.NewAggregateUseCase(repo, filterUC, logger, metrics)

	dashboardHandler, err := handler.NewDashboardHandler(cfg)
	require.NoError(t, err)

	return httpDelivery.NewServer(
		cfg,
		logger,
		metrics,
		dashboardHandler,
		handler.NewSightingHandler(filterUC, logger),
		handler.NewAggregateHandler(aggregateUC, logger),
	)
}

func TestServer_Health(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestServer_DashboardPage(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	// Fixed section order: overview chart, table and map, time series,
	// behavior analysis.
	assert.Contains(t, page, "Total Counts per Species")
	assert.Contains(t, page, "Filtered Data")
	assert.Contains(t, page, "Map of Seabird Sightings")
	idxSeries := strings.Index(page, "Time Series of Seabird Observations")
	idxBehavior := strings.Index(page, "Behavior Analysis (Flying vs Sitting)")
	require.GreaterOrEqual(t, idxSeries, 0)
	require.GreaterOrEqual(t, idxBehavior, 0)
	assert.Less(t, idxSeries, idxBehavior)

	assert.Contains(t, page, "The Atlas of Seabirds at Sea (AS@S)")
}

func TestServer_Metrics(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
