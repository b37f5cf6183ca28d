package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/utils"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/pkg/validator"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase"
	"github.com/BubeleRasmeni/seabirds-dashboard/internal/usecase/dto"
)

// SightingHandler serves the dataset metadata and the filtered view.
type SightingHandler struct {
	filterUC *usecase.FilterUseCase
	logger   *zap.Logger
}

// NewSightingHandler creates a new SightingHandler.
func NewSightingHandler(filterUC *usecase.FilterUseCase, logger *zap.Logger) *SightingHandler {
	return &SightingHandler{
		filterUC: filterUC,
		logger:   logger,
	}
}

// GetMeta godoc
// @Summary Dataset metadata
// @Description Returns the species list, observed date bounds, row count and data source credit used to initialize the dashboard filter controls.
// @Tags Sightings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MetaResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/meta [get]
func (h *SightingHandler) GetMeta(c *fiber.Ctx) error {
	meta, err := h.filterUC.GetMeta(c.Context())
	if err != nil {
		h.logger.Error("Failed to get dataset meta", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, meta, nil)
}

// ListSightings godoc
// @Summary Filtered sightings
// @Description Returns the sighting records matching the selected species subset and inclusive date range. An empty species selection yields an empty view.
// @Tags Sightings
// @Produce json
// @Param species query string false "Comma-separated species common names"
// @Param start query string false "Start date (YYYY-MM-DD), defaults to dataset minimum"
// @Param end query string false "End date (YYYY-MM-DD), defaults to dataset maximum"
// @Success 200 {object} utils.SuccessResponse{data=dto.SightingsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/sightings [get]
func (h *SightingHandler) ListSightings(c *fiber.Ctx) error {
	req := dto.FilterRequest{
		Species: parseSpeciesParam(c.Query("species", "")),
		Start:   c.Query("start", ""),
		End:     c.Query("end", ""),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.filterUC.FilterSightings(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// parseSpeciesParam splits a comma-separated species list, dropping empty
// entries. An empty parameter means an empty selection, not select-all.
func parseSpeciesParam(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
