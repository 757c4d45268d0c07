package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/jenkins-relay/internal/config"
	"github.com/sevigo/jenkins-relay/internal/core"
	"github.com/sevigo/jenkins-relay/internal/metrics"
	"github.com/sevigo/jenkins-relay/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and routes.
func NewRouter(cfg *config.Config, commands core.CommandHandler, responder core.Responder, m *metrics.Metrics, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", m.Handler())

	eventsHandler := handler.NewSlackEventsHandler(cfg, commands, responder, logger)
	r.Post("/slack/events", eventsHandler.Handle)

	return r
}
