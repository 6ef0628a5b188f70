package notificationshandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"appraisal/internal/domain/notifications"
	"appraisal/internal/platform/metrics"
	"appraisal/internal/transport/http/api"
	"appraisal/internal/transport/http/middleware"
)

type Handler struct {
	Service *notifications.Service
	Metrics *metrics.Collector
	Now     func() time.Time
}

func NewHandler(service *notifications.Service, collector *metrics.Collector) *Handler {
	return &Handler{Service: service, Metrics: collector, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleFeed)
		r.Get("/summary", h.handleSummary)
	})
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) ([]notifications.Notification, bool) {
	user, _ := middleware.GetUser(r.Context())
	feed, err := h.Service.Feed(r.Context(), user.Member(), h.Now())
	if err != nil {
		slog.Warn("notification feed failed", "userId", user.UserID, "err", err)
		api.Fail(w, http.StatusInternalServerError, "notification_feed_failed", "failed to build notifications", middleware.GetRequestID(r.Context()))
		return nil, false
	}
	if h.Metrics != nil {
		h.Metrics.FeedBuilt()
	}
	if feed == nil {
		feed = []notifications.Notification{}
	}
	return feed, true
}

func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	feed, ok := h.feed(w, r)
	if !ok {
		return
	}
	w.Header().Set("X-Total-Count", strconv.Itoa(len(feed)))
	api.Success(w, feed, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	feed, ok := h.feed(w, r)
	if !ok {
		return
	}
	api.Success(w, notifications.Summarize(feed), middleware.GetRequestID(r.Context()))
}
