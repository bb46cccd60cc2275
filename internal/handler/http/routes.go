package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const dateParam = "date"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/diaries/{"+dateParam+"}", h.getDiary)
		r.Put("/api/diaries/{"+dateParam+"}", h.saveDiary)
	})

	return router
}
