package rankings

import "errors"

var (
	ErrInvalidPeriod = errors.New("year and month must describe a calendar month")
	ErrMissingCohort = errors.New("manager id is required")
)
