package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nearlive/event-search-service/internal/config"
	"github.com/nearlive/event-search-service/internal/transport/http/handlers"
	"github.com/nearlive/event-search-service/internal/transport/http/middleware"
)

func New(h *handlers.SearchHandler, z *handlers.HealthHandler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", z.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/search/events", h.Events)

	return r
}
