package repository

import (
	"context"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
)

// SightingRepository provides read access to the loaded sighting dataset.
// Implementations load the source once and serve immutable data afterwards.
type SightingRepository interface {
	// GetAll returns every sighting record in source order.
	GetAll(ctx context.Context) ([]domain.Sighting, error)

	// GetSpecies returns the distinct species names in first-appearance order.
	GetSpecies(ctx context.Context) ([]string, error)

	// GetDateBounds returns the observed min/max dates of the dataset.
	GetDateBounds(ctx context.Context) (*domain.DateBounds, error)

	// Health reports whether the dataset is loaded and usable.
	Health(ctx context.Context) error
}
