package performance

import "errors"

var (
	ErrInvalidPeriod = errors.New("year and month must describe a calendar month")
	ErrInvalidMonths = errors.New("months must be between 1 and 24")
)
