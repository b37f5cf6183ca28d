package dto

// FilterRequest carries the filter selections for one interaction. Species
// is the selected subset; an empty subset yields an empty filtered view.
// Empty dates default to the dataset bounds.
type FilterRequest struct {
	Species []string `json:"species"`
	Start   string   `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End     string   `json:"end" validate:"omitempty,datetime=2006-01-02"`
}

// TimeSeriesRequest adds the grouping granularity to the filter selections.
type TimeSeriesRequest struct {
	FilterRequest
	GroupBy string `json:"group_by" validate:"omitempty,oneof=day month year"`
}
