package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
)

// Column headers expected in the source file. Matching is case-insensitive.
const (
	colCommonName = "common name"
	colDate       = "date"
	colFlying     = "flying"
	colSitting    = "sitting"
	colLatitude   = "latitude"
	colLongitude  = "longitude"
)

var dateLayouts = []string{"2006-01-02", "2006/01/02"}

// SightingRepository loads a semicolon-delimited sighting file once per
// process and serves the immutable result. Any malformed row fails the
// whole load; there is no partial-load recovery.
type SightingRepository struct {
	path   string
	logger *zap.Logger

	loadOnce sync.Once
	loadErr  error

	sightings []domain.Sighting
	species   []string
	bounds    domain.DateBounds
}

// NewSightingRepository creates a repository for the given file path. The
// file is not touched until the first read.
func NewSightingRepository(path string, logger *zap.Logger) *SightingRepository {
	return &SightingRepository{
		path:   path,
		logger: logger,
	}
}

// GetAll returns every sighting in source order.
func (r *SightingRepository) GetAll(ctx context.Context) ([]domain.Sighting, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.sightings, nil
}

// GetSpecies returns distinct species names in first-appearance order.
func (r *SightingRepository) GetSpecies(ctx context.Context) ([]string, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return r.species, nil
}

// GetDateBounds returns the observed min/max dates.
func (r *SightingRepository) GetDateBounds(ctx context.Context) (*domain.DateBounds, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	bounds := r.bounds
	return &bounds, nil
}

// Health reports whether the dataset loads successfully.
func (r *SightingRepository) Health(ctx context.Context) error {
	return r.load()
}

func (r *SightingRepository) load() error {
	r.loadOnce.Do(func() {
		start := time.Now()
		r.loadErr = r.readFile()
		if r.loadErr != nil {
			r.logger.Error("Failed to load sighting dataset",
				zap.String("path", r.path),
				zap.Error(r.loadErr),
			)
			return
		}
		r.logger.Info("Sighting dataset loaded",
			zap.String("path", r.path),
			zap.Int("rows", len(r.sightings)),
			zap.Int("species", len(r.species)),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
	return r.loadErr
}

func (r *SightingRepository) readFile() error {
	f, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("dataset is empty: %s", r.path)
	}

	cols, err := indexColumns(records[0])
	if err != nil {
		return err
	}

	sightings := make([]domain.Sighting, 0, len(records)-1)
	species := make([]string, 0, 16)
	seen := make(map[string]bool)
	var bounds domain.DateBounds

	for i, row := range records[1:] {
		line := i + 2 // 1-based, after header

		s, err := parseRow(row, cols)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}

		if !seen[s.CommonName] {
			seen[s.CommonName] = true
			species = append(species, s.CommonName)
		}
		if bounds.Min.IsZero() || s.Date.Before(bounds.Min) {
			bounds.Min = s.Date
		}
		if s.Date.After(bounds.Max) {
			bounds.Max = s.Date
		}

		sightings = append(sightings, s)
	}

	r.sightings = sightings
	r.species = species
	r.bounds = bounds
	return nil
}

type columnIndex struct {
	commonName int
	date       int
	flying     int
	sitting    int
	latitude   int // -1 when absent
	longitude  int // -1 when absent
}

func indexColumns(header []string) (*columnIndex, error) {
	cols := &columnIndex{
		commonName: -1,
		date:       -1,
		flying:     -1,
		sitting:    -1,
		latitude:   -1,
		longitude:  -1,
	}

	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case colCommonName:
			cols.commonName = i
		case colDate:
			cols.date = i
		case colFlying:
			cols.flying = i
		case colSitting:
			cols.sitting = i
		case colLatitude:
			cols.latitude = i
		case colLongitude:
			cols.longitude = i
		}
	}

	missing := make([]string, 0, 4)
	if cols.commonName == -1 {
		missing = append(missing, "Common Name")
	}
	if cols.date == -1 {
		missing = append(missing, "Date")
	}
	if cols.flying == -1 {
		missing = append(missing, "Flying")
	}
	if cols.sitting == -1 {
		missing = append(missing, "Sitting")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRow(row []string, cols *columnIndex) (domain.Sighting, error) {
	var s domain.Sighting

	s.CommonName = strings.TrimSpace(field(row, cols.commonName))
	if s.CommonName == "" {
		return s, fmt.Errorf("empty common name")
	}

	date, err := parseDate(field(row, cols.date))
	if err != nil {
		return s, err
	}
	s.Date = date

	s.Flying, err = parseCount(field(row, cols.flying), "flying")
	if err != nil {
		return s, err
	}
	s.Sitting, err = parseCount(field(row, cols.sitting), "sitting")
	if err != nil {
		return s, err
	}
	s.TotalCount = s.Flying + s.Sitting

	// Coordinates are optional pass-through columns for the table view; a
	// blank or unparseable value leaves them unset rather than failing.
	if lat, ok := parseCoordinate(field(row, cols.latitude)); ok {
		s.Latitude = &lat
	}
	if lon, ok := parseCoordinate(field(row, cols.longitude)); ok {
		s.Longitude = &lon
	}

	return s, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func parseCount(value, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid %s count %q", name, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s count %d", name, n)
	}
	return n, nil
}

func parseCoordinate(value string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
