package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wireOrder(r chi.Router, orderHandler *adaptor.OrderHandler) {
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderHandler.PlaceOrders)
		r.Put("/status", orderHandler.UpdateStatus)
		r.Get("/customer", orderHandler.ListCustomerOrders)
		r.Get("/vendor", orderHandler.ListVendorOrders)
	})
}
