package rankingshandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/rankings"
	"appraisal/internal/platform/jobs"
	"appraisal/internal/platform/metrics"
	"appraisal/internal/transport/http/api"
	"appraisal/internal/transport/http/middleware"
	"appraisal/internal/transport/http/shared"
)

type Handler struct {
	Service *rankings.Service
	Jobs    *jobs.Service
	Metrics *metrics.Collector
	Now     func() time.Time
}

func NewHandler(service *rankings.Service, jobsSvc *jobs.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Jobs: jobsSvc, Metrics: collector, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/rankings", func(r chi.Router) {
		r.Use(middleware.RequireRole(goals.RoleManager))
		r.Get("/", h.handleDashboard)
		r.Post("/snapshots", h.handleSaveSnapshot)
		r.Get("/history/{employeeID}", h.handleHistory)
		r.Get("/average/{employeeID}", h.handleAverage)
	})
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	period := shared.ParsePeriod(r, v, h.Now())
	if v.Reject(w, reqID) {
		return
	}

	rows, err := h.Service.Dashboard(r.Context(), user.UserID, period.Year, period.Month)
	if err != nil {
		h.fail(w, err, "ranking_failed", "failed to compute rankings", reqID)
		return
	}
	api.Success(w, map[string]any{
		"year":     period.Year,
		"month":    period.Month,
		"label":    goals.MonthLabel(period.Year, period.Month),
		"rankings": rows,
	}, reqID)
}

type snapshotResult struct {
	Year  int  `json:"year"`
	Month int  `json:"month"`
	Saved bool `json:"saved"`
}

func (h *Handler) handleSaveSnapshot(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	var payload shared.Period
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	payload.Validate(v)
	if v.Reject(w, reqID) {
		return
	}

	save := func(ctx context.Context) (any, error) {
		saved, err := h.Service.SaveSnapshot(ctx, user.UserID, payload.Year, payload.Month)
		return snapshotResult{Year: payload.Year, Month: payload.Month, Saved: saved}, err
	}
	var (
		out any
		err error
	)
	if h.Jobs != nil {
		out, err = h.Jobs.RunNow(r.Context(), jobs.JobRankingSnapshot, user.UserID, save)
	} else {
		out, err = save(r.Context())
	}
	if err != nil {
		h.fail(w, err, "snapshot_failed", "failed to save ranking snapshot", reqID)
		return
	}

	result := out.(snapshotResult)
	if !result.Saved {
		api.Success(w, result, reqID)
		return
	}
	if h.Metrics != nil {
		h.Metrics.SnapshotSaved()
	}
	api.Created(w, result, reqID)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	limit := v.IntParam("limit", r.URL.Query().Get("limit"), rankings.DefaultHistoryMonths, 1, rankings.MaxHistoryMonths)
	if v.Reject(w, reqID) {
		return
	}

	history := h.Service.HistoricalRankings(r.Context(), user.UserID, chi.URLParam(r, "employeeID"), limit)
	api.Success(w, history, reqID)
}

func (h *Handler) handleAverage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	months := v.IntParam("months", r.URL.Query().Get("months"), rankings.DefaultHistoryMonths, 1, rankings.MaxHistoryMonths)
	if v.Reject(w, reqID) {
		return
	}

	avg, ok := h.Service.AverageRanking(r.Context(), user.UserID, chi.URLParam(r, "employeeID"), months)
	if !ok {
		api.Success(w, map[string]any{"available": false, "avgRank": "N/A"}, reqID)
		return
	}
	api.Success(w, map[string]any{"available": true, "average": avg}, reqID)
}

func (h *Handler) fail(w http.ResponseWriter, err error, code, message, reqID string) {
	if errors.Is(err, rankings.ErrInvalidPeriod) || errors.Is(err, rankings.ErrMissingCohort) {
		api.Fail(w, http.StatusBadRequest, "invalid_request", err.Error(), reqID)
		return
	}
	slog.Warn("ranking request failed", "code", code, "requestId", reqID, "err", err)
	api.Fail(w, http.StatusInternalServerError, code, message, reqID)
}
