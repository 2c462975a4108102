package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)
		if h.serveMetrics {
			r.Handle("/metrics", h.metrics.Handler())
		}

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/menus", h.listMenus)
	})

	// routes behind the authorization gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/customers", h.listCustomers)
		r.Post("/orders", h.placeOrder)
		r.Get("/orders/summary", h.orderSummary)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
