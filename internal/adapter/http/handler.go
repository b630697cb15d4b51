package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dexrooms/internal/core/port"
	"dexrooms/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a use case to execute business logic, a logger for structured
// logging and optional metrics. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc     port.CampaignUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	router  chi.Router
}

// NewHandler creates a handler with all routes configured. When m is nil
// the /metrics endpoint is not mounted.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, m *metrics.Metrics) *Handler {
	h := &Handler{svc: svc, logger: logger, metrics: m}
	r := chi.NewRouter()
	r.Use(h.requestID, h.accessLog, middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/tokens/{address}", h.handlePreviewToken)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
