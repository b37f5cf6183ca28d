package domain

import "sort"

// SpeciesTotal is the summed TotalCount for one species.
type SpeciesTotal struct {
	CommonName string `json:"common_name"`
	TotalCount int    `json:"total_count"`
}

// TimeSeriesPoint is the summed TotalCount for one (period, species)
// combination present in the filtered view.
type TimeSeriesPoint struct {
	Period     string `json:"period"`
	CommonName string `json:"common_name"`
	TotalCount int    `json:"total_count"`
}

// BehaviorTotal carries per-species flying and sitting sums, kept as two
// separate columns.
type BehaviorTotal struct {
	CommonName string `json:"common_name"`
	Flying     int    `json:"flying"`
	Sitting    int    `json:"sitting"`
}

// AggregateSpeciesTotals groups sightings by species and sums TotalCount.
// Results are sorted by species name for deterministic output.
func AggregateSpeciesTotals(sightings []Sighting) []SpeciesTotal {
	sums := make(map[string]int)
	for _, s := range sightings {
		sums[s.CommonName] += s.TotalCount
	}

	totals := make([]SpeciesTotal, 0, len(sums))
	for name, total := range sums {
		totals = append(totals, SpeciesTotal{CommonName: name, TotalCount: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].CommonName < totals[j].CommonName
	})
	return totals
}

// AggregateTimeSeries groups sightings by (period, species) under the given
// granularity and sums TotalCount. Only observed combinations are emitted;
// absent combinations are not zero-filled. Sorted by period then species.
func AggregateTimeSeries(sightings []Sighting, groupBy Granularity) []TimeSeriesPoint {
	type key struct {
		period  string
		species string
	}
	sums := make(map[key]int)
	for _, s := range sightings {
		sums[key{groupBy.PeriodLabel(s.Date), s.CommonName}] += s.TotalCount
	}

	points := make([]TimeSeriesPoint, 0, len(sums))
	for k, total := range sums {
		points = append(points, TimeSeriesPoint{
			Period:     k.period,
			CommonName: k.species,
			TotalCount: total,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Period != points[j].Period {
			return points[i].Period < points[j].Period
		}
		return points[i].CommonName < points[j].CommonName
	})
	return points
}

// AggregateBehaviorTotals groups sightings by species and sums the flying
// and sitting counts independently. Sorted by species name.
func AggregateBehaviorTotals(sightings []Sighting) []BehaviorTotal {
	type sums struct {
		flying  int
		sitting int
	}
	bySpecies := make(map[string]*sums)
	for _, s := range sightings {
		b, ok := bySpecies[s.CommonName]
		if !ok {
			b = &sums{}
			bySpecies[s.CommonName] = b
		}
		b.flying += s.Flying
		b.sitting += s.Sitting
	}

	totals := make([]BehaviorTotal, 0, len(bySpecies))
	for name, b := range bySpecies {
		totals = append(totals, BehaviorTotal{
			CommonName: name,
			Flying:     b.flying,
			Sitting:    b.sitting,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].CommonName < totals[j].CommonName
	})
	return totals
}
