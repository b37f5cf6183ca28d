package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain/repository"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/errors"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

const dateLayout = "2006-01-02"

// FilterUseCase derives the filtered view and the dataset metadata backing
// the filter controls. Filter state is built fresh per request; nothing is
// held between interactions.
type FilterUseCase struct {
	sightingRepo repository.SightingRepository
	logger       *zap.Logger
	source       dto.DataSource
}

// NewFilterUseCase creates a new FilterUseCase.
func NewFilterUseCase(
	sightingRepo repository.SightingRepository,
	logger *zap.Logger,
	source dto.DataSource,
) *FilterUseCase {
	return &FilterUseCase{
		sightingRepo: sightingRepo,
		logger:       logger,
		source:       source,
	}
}

// GetMeta returns the species list, date bounds and row count used to
// initialize the dashboard controls.
func (uc *FilterUseCase) GetMeta(ctx context.Context) (*dto.MetaResponse, error) {
	species, err := uc.sightingRepo.GetSpecies(ctx)
	if err != nil {
		uc.logger.Error("Failed to get species list", zap.Error(err))
		return nil, errors.ErrDatasetLoad
	}

	bounds, err := uc.sightingRepo.GetDateBounds(ctx)
	if err != nil {
		return nil, errors.ErrDatasetLoad
	}

	sightings, err := uc.sightingRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.ErrDatasetLoad
	}

	return &dto.MetaResponse{
		Species:    species,
		DateBounds: *bounds,
		TotalRows:  len(sightings),
		DataSource: uc.source,
	}, nil
}

// FilterSightings returns the filtered view for the given selections.
func (uc *FilterUseCase) FilterSightings(ctx context.Context, req dto.FilterRequest) (*dto.SightingsResponse, error) {
	filter, err := uc.BuildFilter(ctx, req, "")
	if err != nil {
		return nil, err
	}

	sightings, err := uc.sightingRepo.GetAll(ctx)
	if err != nil {
		return nil, errors.ErrDatasetLoad
	}

	filtered := filter.Apply(sightings)

	uc.logger.Debug("Filtered sightings",
		zap.Int("selected_species", len(filter.Species)),
		zap.Int("rows", len(filtered)),
	)

	return &dto.SightingsResponse{
		Sightings: filtered,
		Total:     len(filtered),
	}, nil
}

// BuildFilter resolves the request into an immutable filter value. Missing
// dates default to the dataset bounds and provided dates are clamped inside
// them; an inverted range is rejected.
func (uc *FilterUseCase) BuildFilter(ctx context.Context, req dto.FilterRequest, groupBy string) (domain.Filter, error) {
	bounds, err := uc.sightingRepo.GetDateBounds(ctx)
	if err != nil {
		return domain.Filter{}, errors.ErrDatasetLoad
	}

	start := bounds.Min
	if req.Start != "" {
		start, err = time.Parse(dateLayout, req.Start)
		if err != nil {
			return domain.Filter{}, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"start": req.Start,
			})
		}
	}

	end := bounds.Max
	if req.End != "" {
		end, err = time.Parse(dateLayout, req.End)
		if err != nil {
			return domain.Filter{}, errors.ErrInvalidDate.WithDetails(map[string]interface{}{
				"end": req.End,
			})
		}
	}

	if end.Before(start) {
		return domain.Filter{}, errors.ErrInvalidDateRange.WithDetails(map[string]interface{}{
			"start": start.Format(dateLayout),
			"end":   end.Format(dateLayout),
		})
	}

	// Clamp inside the observed dataset span.
	if start.Before(bounds.Min) {
		start = bounds.Min
	}
	if end.After(bounds.Max) {
		end = bounds.Max
	}

	granularity, err := domain.ParseGranularity(groupBy)
	if err != nil {
		return domain.Filter{}, errors.ErrInvalidGroupBy.WithDetails(map[string]interface{}{
			"group_by": groupBy,
		})
	}

	return domain.Filter{
		Species: req.Species,
		Start:   start,
		End:     end,
		GroupBy: granularity,
	}, nil
}
