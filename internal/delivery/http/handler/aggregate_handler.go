package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/utils"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/validator"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

// AggregateHandler serves the chart projections.
type AggregateHandler struct {
	aggregateUC *usecase.AggregateUseCase
	logger      *zap.Logger
}

// NewAggregateHandler creates a new AggregateHandler.
func NewAggregateHandler(aggregateUC *usecase.AggregateUseCase, logger *zap.Logger) *AggregateHandler {
	return &AggregateHandler{
		aggregateUC: aggregateUC,
		logger:      logger,
	}
}

// GetSpeciesTotals godoc
// @Summary Species totals over the entire dataset
// @Description Returns the summed total count (flying + sitting) per species over the full dataset. This projection ignores the filter selections so the overview chart stays stable.
// @Tags Aggregates
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SpeciesTotalsResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/aggregates/species-totals [get]
func (h *AggregateHandler) GetSpeciesTotals(c *fiber.Ctx) error {
	result, err := h.aggregateUC.SpeciesTotals(c.Context())
	if err != nil {
		h.logger.Error("Failed to aggregate species totals", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetTimeSeries godoc
// @Summary Filtered time series
// @Description Returns the summed total count per (period, species) over the filtered view. The grouping granularity buckets dates into day, month or year periods. Only observed combinations are returned.
// @Tags Aggregates
// @Produce json
// @Param species query string false "Comma-separated species common names"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Param group_by query string false "Grouping granularity: day, month or year" default(month)
// @Success 200 {object} utils.SuccessResponse{data=dto.TimeSeriesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/aggregates/time-series [get]
func (h *AggregateHandler) GetTimeSeries(c *fiber.Ctx) error {
	req := dto.TimeSeriesRequest{
		FilterRequest: dto.FilterRequest{
			Species: parseSpeciesParam(c.Query("species", "")),
			Start:   c.Query("start", ""),
			End:     c.Query("end", ""),
		},
		GroupBy: c.Query("group_by", ""),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.aggregateUC.TimeSeries(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetBehaviorTotals godoc
// @Summary Filtered flying vs sitting totals
// @Description Returns the flying and sitting sums per species over the filtered view, as two independent columns.
// @Tags Aggregates
// @Produce json
// @Param species query string false "Comma-separated species common names"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} utils.SuccessResponse{data=dto.BehaviorResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/aggregates/behavior [get]
func (h *AggregateHandler) GetBehaviorTotals(c *fiber.Ctx) error {
	req := dto.FilterRequest{
		Species: parseSpeciesParam(c.Query("species", "")),
		Start:   c.Query("start", ""),
		End:     c.Query("end", ""),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.aggregateUC.BehaviorTotals(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
