package domain

import "time"

// Sighting is one observed-count entry for a species on a date. TotalCount
// is derived at load time and never written back to the source file.
type Sighting struct {
	CommonName string    `json:"common_name"`
	Date       time.Time `json:"date"`
	Flying     int       `json:"flying"`
	Sitting    int       `json:"sitting"`
	TotalCount int       `json:"total_count"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
}

// DateBounds is the observed min/max date span of the dataset.
type DateBounds struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}
