package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
)

// MockSightingRepository is a mock of SightingRepository
type MockSightingRepository struct {
	mock.Mock
}

func (m *MockSightingRepository) GetAll(ctx context.Context) ([]domain.Sighting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sighting), args.Error(1)
}

func (m *MockSightingRepository) GetSpecies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSightingRepository) GetDateBounds(ctx context.Context) (*domain.DateBounds, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DateBounds), args.Error(1)
}

func (m *MockSightingRepository) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSightings() []domain.Sighting {
	return []domain.Sighting{
		{CommonName: "African Penguin", Date: day(2020, 1, 1), Flying: 2, Sitting: 1, TotalCount: 3},
		{CommonName: "Cape Gannet", Date: day(2020, 1, 15), Flying: 5, Sitting: 0, TotalCount: 5},
		{CommonName: "African Penguin", Date: day(2020, 2, 1), Flying: 0, Sitting: 4, TotalCount: 4},
		{CommonName: "Sooty Shearwater", Date: day(2021, 6, 30), Flying: 7, Sitting: 2, TotalCount: 9},
	}
}

func testBounds() *domain.DateBounds {
	return &domain.DateBounds{Min: day(2020, 1, 1), Max: day(2021, 6, 30)}
}
