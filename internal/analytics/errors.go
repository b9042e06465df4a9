package analytics

import "errors"

var (
	// ErrMonthNotFound is returned when a referenced month id is not in
	// the catalog.
	ErrMonthNotFound = errors.New("month not found")

	// ErrInvalidRange is returned when a project's end date precedes
	// its start date.
	ErrInvalidRange = errors.New("project end date precedes start date")
)
