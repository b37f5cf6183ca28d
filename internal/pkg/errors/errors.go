package errors

import "net/http"

var (
	ErrDatasetLoad = New(
		"DATASET_LOAD_ERROR",
		"Failed to load the sighting dataset",
		http.StatusInternalServerError,
	)

	ErrInvalidDateRange = New(
		"INVALID_DATE_RANGE",
		"Invalid date range: end date is before start date",
		http.StatusBadRequest,
	)

	ErrInvalidDate = New(
		"INVALID_DATE",
		"Invalid date: expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidGroupBy = New(
		"INVALID_GROUP_BY",
		"Invalid grouping: must be one of day, month, year",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
