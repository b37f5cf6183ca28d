package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain/repository"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/observability"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/errors"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

// AggregateUseCase computes the chart projections. Species totals always
// cover the entire dataset; the time-series and behavior projections are
// computed from the filtered view.
type AggregateUseCase struct {
	sightingRepo repository.SightingRepository
	filterUC     *FilterUseCase
	logger       *zap.Logger
	metrics      *observability.Metrics
}

// NewAggregateUseCase creates a new AggregateUseCase.
func NewAggregateUseCase(
	sightingRepo repository.SightingRepository,
	filterUC *FilterUseCase,
	logger *zap.Logger,
	metrics *observability.Metrics,
) *AggregateUseCase {
	return &AggregateUseCase{
		sightingRepo: sightingRepo,
		filterUC:     filterUC,
		logger:       logger,
		metrics:      metrics,
	}
}

// SpeciesTotals sums TotalCount per species over the full dataset. It
// deliberately ignores the current filter selections so the overview chart
// stays stable while the other views adjust.
func (uc *AggregateUseCase) SpeciesTotals(ctx context.Context) (*dto.SpeciesTotalsResponse, error) {
	sightings, err := uc.sightingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get sightings", zap.Error(err))
		return nil, errors.ErrDatasetLoad
	}

	totals := domain.AggregateSpeciesTotals(sightings)

	return &dto.SpeciesTotalsResponse{
		Totals: totals,
		Total:  len(totals),
	}, nil
}

// TimeSeries sums TotalCount per (period, species) over the filtered view.
func (uc *AggregateUseCase) TimeSeries(ctx context.Context, req dto.TimeSeriesRequest) (*dto.TimeSeriesResponse, error) {
	filtered, filter, err := uc.filteredView(ctx, req.FilterRequest, req.GroupBy)
	if err != nil {
		return nil, err
	}

	points := domain.AggregateTimeSeries(filtered, filter.GroupBy)

	return &dto.TimeSeriesResponse{
		GroupBy: string(filter.GroupBy),
		Points:  points,
		Total:   len(points),
	}, nil
}

// BehaviorTotals sums flying and sitting counts per species over the
// filtered view, as two independent columns.
func (uc *AggregateUseCase) BehaviorTotals(ctx context.Context, req dto.FilterRequest) (*dto.BehaviorResponse, error) {
	filtered, _, err := uc.filteredView(ctx, req, "")
	if err != nil {
		return nil, err
	}

	totals := domain.AggregateBehaviorTotals(filtered)

	return &dto.BehaviorResponse{
		Totals: totals,
		Total:  len(totals),
	}, nil
}

func (uc *AggregateUseCase) filteredView(ctx context.Context, req dto.FilterRequest, groupBy string) ([]domain.Sighting, domain.Filter, error) {
	filter, err := uc.filterUC.BuildFilter(ctx, req, groupBy)
	if err != nil {
		return nil, domain.Filter{}, err
	}

	sightings, err := uc.sightingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to get sightings", zap.Error(err))
		return nil, domain.Filter{}, errors.ErrDatasetLoad
	}

	start := time.Now()
	filtered := filter.Apply(sightings)
	uc.metrics.PipelineRuns.Inc()
	uc.metrics.FilterDuration.Observe(time.Since(start).Seconds())

	return filtered, filter, nil
}
