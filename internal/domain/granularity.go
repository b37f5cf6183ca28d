package domain

import (
	"fmt"
	"time"
)

// Granularity controls how a sighting date is bucketed into a period label
// for the time-series aggregation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// DefaultGranularity matches the dashboard's initial grouping selection.
const DefaultGranularity = GranularityMonth

// ParseGranularity accepts the wire form of a grouping selector value.
// The empty string resolves to the default.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return DefaultGranularity, nil
	case GranularityDay, GranularityMonth, GranularityYear:
		return Granularity(s), nil
	default:
		return "", fmt.Errorf("unknown granularity %q", s)
	}
}

// PeriodLabel buckets t into this granularity's period label:
// day -> YYYY-MM-DD, month -> YYYY-MM, year -> YYYY.
func (g Granularity) PeriodLabel(t time.Time) string {
	switch g {
	case GranularityDay:
		return t.Format("2006-01-02")
	case GranularityYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01")
	}
}
