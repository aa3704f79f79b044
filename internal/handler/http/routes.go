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
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// routes of the logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/account", h.getAccount)
		r.Get("/users", h.listUsers)
		r.Get("/transfers", h.listTransfers)
		r.Post("/transfers", h.sendTransfer)
		r.Get("/transfers/{id}", h.getTransfer)
	})

	router.MethodNotAllowed(methodNotAllowed(router))

	return router
}
