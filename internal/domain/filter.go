package domain

import "time"

// Filter is the immutable filter state for one interaction: a species
// subset, an inclusive date range and a grouping granularity. It is built
// per request and never stored server-side.
type Filter struct {
	Species []string
	Start   time.Time
	End     time.Time
	GroupBy Granularity
}

// Matches reports whether s satisfies the species and date selections.
// An empty species subset matches nothing.
func (f Filter) Matches(s Sighting) bool {
	if !f.containsSpecies(s.CommonName) {
		return false
	}
	if s.Date.Before(f.Start) || s.Date.After(f.End) {
		return false
	}
	return true
}

// Apply returns the filtered view: the subset of sightings matching f,
// in source order.
func (f Filter) Apply(sightings []Sighting) []Sighting {
	if len(f.Species) == 0 {
		return []Sighting{}
	}

	filtered := make([]Sighting, 0, len(sightings))
	for _, s := range sightings {
		if f.Matches(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func (f Filter) containsSpecies(name string) bool {
	for _, sp := range f.Species {
		if sp == name {
			return true
		}
	}
	return false
}
