package performancehandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"appraisal/internal/domain/goals"
	"appraisal/internal/domain/performance"
	"appraisal/internal/transport/http/api"
	"appraisal/internal/transport/http/middleware"
	"appraisal/internal/transport/http/shared"
)

const defaultTrendMonths = 6

type Handler struct {
	Service *performance.Service
	Now     func() time.Time
}

func NewHandler(service *performance.Service) *Handler {
	return &Handler{Service: service, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/performance", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/metrics", h.handleMetrics)
		r.Get("/goals", h.handleGoals)
		r.Get("/trend", h.handleTrend)
		r.Get("/completable", h.handleCompletable)
	})
}

func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	period := shared.ParsePeriod(r, v, h.Now())
	if v.Reject(w, reqID) {
		return
	}

	summary, err := h.Service.PeriodSummary(r.Context(), user.UserID, period.Year, period.Month, h.Now())
	if err != nil {
		h.fail(w, err, "metrics_failed", "failed to compute metrics", reqID)
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handleGoals(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	period := shared.ParsePeriod(r, v, h.Now())
	if v.Reject(w, reqID) {
		return
	}

	items, err := h.Service.PeriodGoals(r.Context(), user.UserID, period.Year, period.Month)
	if err != nil {
		h.fail(w, err, "goal_list_failed", "failed to list goals", reqID)
		return
	}
	api.Success(w, items, reqID)
}

func (h *Handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	v := shared.NewValidator()
	months := v.IntParam("months", r.URL.Query().Get("months"), defaultTrendMonths, 1, performance.MaxTrendMonths)
	if v.Reject(w, reqID) {
		return
	}

	points, err := h.Service.MonthlyTrend(r.Context(), user.UserID, months, h.Now())
	if err != nil {
		h.fail(w, err, "trend_failed", "failed to compute trend", reqID)
		return
	}
	api.Success(w, points, reqID)
}

func (h *Handler) handleCompletable(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	reqID := middleware.GetRequestID(r.Context())

	items, err := h.Service.Completable(r.Context(), user.UserID)
	if err != nil {
		h.fail(w, err, "goal_list_failed", "failed to list goals", reqID)
		return
	}
	if items == nil {
		items = []goals.Goal{}
	}
	api.Success(w, items, reqID)
}

func (h *Handler) fail(w http.ResponseWriter, err error, code, message, reqID string) {
	if errors.Is(err, performance.ErrInvalidPeriod) || errors.Is(err, performance.ErrInvalidMonths) {
		api.Fail(w, http.StatusBadRequest, "invalid_request", err.Error(), reqID)
		return
	}
	slog.Warn("performance request failed", "code", code, "requestId", reqID, "err", err)
	api.Fail(w, http.StatusInternalServerError, code, message, reqID)
}
