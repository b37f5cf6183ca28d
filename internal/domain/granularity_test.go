package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BubeleRasmeni/seabirds-dashboard/internal/domain"
)

func TestParseGranularity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Granularity
		wantErr bool
	}{
		{name: "day", input: "day", want: domain.GranularityDay},
		{name: "month", input: "month", want: domain.GranularityMonth},
		{name: "year", input: "year", want: domain.GranularityYear},
		{name: "empty defaults to month", input: "", want: domain.GranularityMonth},
		{name: "unknown value", input: "week", wantErr: true},
		{name: "wrong case", input: "Month", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseGranularity(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGranularity_PeriodLabel(t *testing.T) {
	date := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2020-01-15", domain.GranularityDay.PeriodLabel(date))
	assert.Equal(t, "2020-01", domain.GranularityMonth.PeriodLabel(date))
	assert.Equal(t, "2020", domain.GranularityYear.PeriodLabel(date))
}
