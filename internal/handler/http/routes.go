package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressLevel is the gzip level of JSON responses.
const compressLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressLevel, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes for authenticated employees
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/customers", h.createCustomer)
		r.Get("/api/customers", h.listCustomers)
		r.Get("/api/customers/{id}", h.getCustomer)
		r.Patch("/api/customers/{id}", h.updateCustomer)

		r.Post("/api/customers/{id}/payment-methods", h.createPaymentMethod)
		r.Get("/api/customers/{id}/payment-methods", h.listCustomerPaymentMethods)
		r.Get("/api/payment-methods/{id}", h.getPaymentMethod)
		r.Patch("/api/payment-methods/{id}", h.updatePaymentMethod)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
