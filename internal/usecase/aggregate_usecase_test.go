package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

func newAggregateUC(repo *MockSightingRepository) *usecase.AggregateUseCase {
	filterUC := newFilterUC(repo)
	return usecase.NewAggregateUseCase(repo, filterUC, zap.NewNop(), observability.NewMetricsForTesting())
}

func TestAggregateUseCase_SpeciesTotals(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockSightingRepository{}
	mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
	uc := newAggregateUC(mockRepo)

	resp, err := uc.SpeciesTotals(ctx)
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, domain.SpeciesTotal{CommonName: "African Penguin", TotalCount: 7}, resp.Totals[0])
	assert.Equal(t, domain.SpeciesTotal{CommonName: "Cape Gannet", TotalCount: 5}, resp.Totals[1])
	assert.Equal(t, domain.SpeciesTotal{CommonName: "Sooty Shearwater", TotalCount: 9}, resp.Totals[2])
}

// The overview projection must not react to filter parameters: it has no
// filter input at all, so identical calls bracketing filtered queries
// return identical data.
func TestAggregateUseCase_SpeciesTotalsIgnoreFilters(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockSightingRepository{}
	mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
	mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
	uc := newAggregateUC(mockRepo)

	before, err := uc.SpeciesTotals(ctx)
	require.NoError(t, err)

	_, err = uc.TimeSeries(ctx, dto.TimeSeriesRequest{
		FilterRequest: dto.FilterRequest{Species: []string{"Cape Gannet"}, Start: "2020-01-01", End: "2020-01-31"},
		GroupBy:       "day",
	})
	require.NoError(t, err)

	after, err := uc.SpeciesTotals(ctx)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestAggregateUseCase_TimeSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("groups filtered view by period and species", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
		mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
		uc := newAggregateUC(mockRepo)

		resp, err := uc.TimeSeries(ctx, dto.TimeSeriesRequest{
			FilterRequest: dto.FilterRequest{
				Species: []string{"African Penguin"},
			},
			GroupBy: "month",
		})
		require.NoError(t, err)

		assert.Equal(t, "month", resp.GroupBy)
		require.Equal(t, 2, resp.Total)
		assert.Equal(t, domain.TimeSeriesPoint{Period: "2020-01", CommonName: "African Penguin", TotalCount: 3}, resp.Points[0])
		assert.Equal(t, domain.TimeSeriesPoint{Period: "2020-02", CommonName: "African Penguin", TotalCount: 4}, resp.Points[1])
	})

	t.Run("empty species selection yields empty series", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
		mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
		uc := newAggregateUC(mockRepo)

		resp, err := uc.TimeSeries(ctx, dto.TimeSeriesRequest{GroupBy: "month"})
		require.NoError(t, err)

		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Points)
	})

	t.Run("granularity does not alter the species and date filters", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
		mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
		uc := newAggregateUC(mockRepo)

		req := dto.FilterRequest{Species: []string{"African Penguin"}}

		monthly, err := uc.TimeSeries(ctx, dto.TimeSeriesRequest{FilterRequest: req, GroupBy: "month"})
		require.NoError(t, err)
		yearly, err := uc.TimeSeries(ctx, dto.TimeSeriesRequest{FilterRequest: req, GroupBy: "year"})
		require.NoError(t, err)

		sum := func(points []domain.TimeSeriesPoint) int {
			total := 0
			for _, p := range points {
				total += p.TotalCount
			}
			return total
		}
		assert.Equal(t, sum(monthly.Points), sum(yearly.Points))
	})
}

func TestAggregateUseCase_BehaviorTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("sums flying and sitting independently", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
		mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
		uc := newAggregateUC(mockRepo)

		resp, err := uc.BehaviorTotals(ctx, dto.FilterRequest{
			Species: []string{"African Penguin", "Cape Gannet"},
		})
		require.NoError(t, err)

		require.Equal(t, 2, resp.Total)
		assert.Equal(t, domain.BehaviorTotal{CommonName: "African Penguin", Flying: 2, Sitting: 5}, resp.Totals[0])
		assert.Equal(t, domain.BehaviorTotal{CommonName: "Cape Gannet", Flying: 5, Sitting: 0}, resp.Totals[1])
	})

	t.Run("empty species selection yields empty totals", func(t *testing.T) {
		mockRepo := &MockSightingRepository{}
		mockRepo.On("GetAll", ctx).Return(testSightings(), nil)
		mockRepo.On("GetDateBounds", ctx).Return(testBounds(), nil)
		uc := newAggregateUC(mockRepo)

		resp, err := uc.BehaviorTotals(ctx, dto.FilterRequest{})
		require.NoError(t, err)

		assert.Zero(t, resp.Total)
		assert.Empty(t, resp.Totals)
	})
}
