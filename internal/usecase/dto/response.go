package dto

import "github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"

// DataSource credits the upstream survey project.
type DataSource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MetaResponse describes the loaded dataset for the filter controls.
type MetaResponse struct {
	Species    []string          `json:"species"`
	DateBounds domain.DateBounds `json:"date_bounds"`
	TotalRows  int               `json:"total_rows"`
	DataSource DataSource        `json:"data_source"`
}

// SightingsResponse is the filtered view.
type SightingsResponse struct {
	Sightings []domain.Sighting `json:"sightings"`
	Total     int               `json:"total"`
}

// SpeciesTotalsResponse holds per-species totals over the entire dataset.
type SpeciesTotalsResponse struct {
	Totals []domain.SpeciesTotal `json:"totals"`
	Total  int                   `json:"total"`
}

// TimeSeriesResponse holds the filtered (period, species) totals.
type TimeSeriesResponse struct {
	GroupBy string                   `json:"group_by"`
	Points  []domain.TimeSeriesPoint `json:"points"`
	Total   int                      `json:"total"`
}

// BehaviorResponse holds the filtered flying/sitting sums per species.
type BehaviorResponse struct {
	Totals []domain.BehaviorTotal `json:"totals"`
	Total  int                    `json:"total"`
}
