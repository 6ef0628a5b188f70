package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"appraisal/internal/domain/notifications"
	"appraisal/internal/domain/performance"
	"appraisal/internal/domain/rankings"
	"appraisal/internal/platform/config"
	"appraisal/internal/platform/jobs"
	"appraisal/internal/platform/metrics"
	"appraisal/internal/transport/http/api"
	notificationshandler "appraisal/internal/transport/http/handlers/notifications"
	performancehandler "appraisal/internal/transport/http/handlers/performance"
	rankingshandler "appraisal/internal/transport/http/handlers/rankings"
	"appraisal/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Stores  *Stores
	Metrics *metrics.Collector
	Router  http.Handler
}

func New(cfg config.Config, stores *Stores) *App {
	collector := metrics.New()
	return &App{
		Config:  cfg,
		Stores:  stores,
		Metrics: collector,
		Router:  NewRouter(cfg, stores, collector),
	}
}

func NewRankingService(cfg config.Config, stores *Stores) *rankings.Service {
	svc := rankings.NewService(stores.Goals, stores.Goals, stores.Snapshots)
	svc.Concurrency = cfg.RankingConcurrency
	return svc
}

func NewNotificationService(cfg config.Config, stores *Stores) *notifications.Service {
	svc := notifications.New(stores.Goals)
	svc.Limit = cfg.NotificationLimit
	return svc
}

func NewRouter(cfg config.Config, stores *Stores, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := stores.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		performancehandler.NewHandler(performance.NewService(stores.Goals)).RegisterRoutes(r)

		rankingsHandler := rankingshandler.NewHandler(NewRankingService(cfg, stores), jobs.New(stores.Runs), collector)
		rankingsHandler.RegisterRoutes(r)

		notificationshandler.NewHandler(NewNotificationService(cfg, stores), collector).RegisterRoutes(r)
	})

	return router
}

// Run serves the API until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config) error {
	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	app := New(cfg, stores)
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("appraisal server listening", "addr", cfg.Addr, "driver", cfg.StoreDriver)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slog.Info("appraisal server shutting down")
	return srv.Shutdown(shutdownCtx)
}
