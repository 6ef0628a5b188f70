package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriodDefaultsToCurrentISTMonth(t *testing.T) {
	// 20:00 UTC on Jan 31 is already Feb 1 in IST.
	now := time.Date(2024, 1, 31, 20, 0, 0, 0, time.UTC)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	v := NewValidator()

	p := ParsePeriod(req, v, now)
	assert.False(t, v.HasIssues())
	assert.Equal(t, Period{Year: 2024, Month: 2}, p)
}

func TestParsePeriodRejectsBadValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?year=abc&month=13", nil)
	v := NewValidator()

	ParsePeriod(req, v, time.Now())
	require.True(t, v.HasIssues())
	issues := v.Issues()
	require.Len(t, issues, 2)
	assert.Equal(t, "month", issues[0].Field)
	assert.Equal(t, "year", issues[1].Field)

	rec := httptest.NewRecorder()
	assert.True(t, v.Reject(rec, "req-1"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}

func TestPeriodValidate(t *testing.T) {
	v := NewValidator()
	Period{Year: 2024, Month: 0}.Validate(v)
	assert.Equal(t, []ValidationIssue{{Field: "month", Reason: "must be between 1 and 12"}}, v.Issues())
}
