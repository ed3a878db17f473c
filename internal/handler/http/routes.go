package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withHashing)

		r.Post("/api/pipeline/execute", h.execute)
		r.Post("/api/securedata/{id}/shares/{userID}", h.grantShare)
		r.Delete("/api/securedata/{id}/shares/{userID}", h.revokeShare)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
