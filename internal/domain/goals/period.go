package goals

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// IST is the fixed UTC+5:30 zone every day boundary is evaluated in.
var IST = time.FixedZone("IST", 5*60*60+30*60)

var (
	ErrMissingDate      = errors.New("date is missing")
	ErrMissingTimestamp = errors.New("timestamp is missing")
)

var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ParseDate parses an ISO calendar date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingDate
	}
	return time.ParseInLocation(DateLayout, value, loc)
}

// ParseTimestamp normalises a stored timestamp into loc. Values carrying an
// offset are converted; naive values are taken as already local to loc.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMissingTimestamp
	}
	for _, layout := range zonedLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.In(loc), nil
		}
	}
	var lastErr error
	for _, layout := range naiveLayouts {
		parsed, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// LocalDate truncates t to midnight of its calendar day in loc.
func LocalDate(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days from a to b; negative when b is earlier.
func DaysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// QuarterOf maps a calendar month to its calendar quarter.
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}

func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

func MonthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// MonthsBefore steps n calendar months back from (year, month).
func MonthsBefore(year, month, n int) (int, int) {
	total := year*12 + (month - 1) - n
	return total / 12, total%12 + 1
}

func ValidPeriod(year, month int) bool {
	return year > 0 && month >= 1 && month <= 12
}

// WeekDates splits a month into four tracking weeks of seven days; the
// fourth week absorbs the remaining days.
func WeekDates(year, month, week int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	if week < 1 {
		week = 1
	}
	if week >= WeeksPerMonth {
		return first.AddDate(0, 0, 21), last
	}
	start := first.AddDate(0, 0, (week-1)*7)
	end := first.AddDate(0, 0, week*7-1)
	if end.After(last) {
		end = last
	}
	return start, end
}

func WeekForDate(year, month int, date time.Time) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	diff := DaysBetween(first, date)
	switch {
	case diff < 7:
		return 1
	case diff < 14:
		return 2
	case diff < 21:
		return 3
	default:
		return 4
	}
}
