package shared

import (
	"net/http"
	"time"

	"appraisal/internal/domain/goals"
)

type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// CurrentPeriod is the calendar month containing now in IST.
func CurrentPeriod(now time.Time) Period {
	local := now.In(goals.IST)
	return Period{Year: local.Year(), Month: int(local.Month())}
}

// ParsePeriod reads the year and month query parameters, defaulting each to
// the current IST month.
func ParsePeriod(r *http.Request, v *Validator, now time.Time) Period {
	current := CurrentPeriod(now)
	query := r.URL.Query()
	return Period{
		Year:  v.IntParam("year", query.Get("year"), current.Year, 2000, 2100),
		Month: v.IntParam("month", query.Get("month"), current.Month, 1, 12),
	}
}

// Validate records issues for a period decoded from a request body.
func (p Period) Validate(v *Validator) {
	if p.Year < 2000 || p.Year > 2100 {
		v.Add("year", "must be between 2000 and 2100")
	}
	if p.Month < 1 || p.Month > 12 {
		v.Add("month", "must be between 1 and 12")
	}
}
