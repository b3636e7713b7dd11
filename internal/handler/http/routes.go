package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.metrics != nil {
		router.Use(h.metrics.InstrumentHandler)
	}
	if len(h.allowedOrigins) > 0 {
		router.Use(h.withCORS())
	}

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Post("/api/mintNFT", h.mintNFT)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health", h.health)
	})

	// promhttp negotiates its own compression
	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
