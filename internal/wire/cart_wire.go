package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/items", cartHandler.AddItem)
		r.Patch("/items", cartHandler.UpdateQuantity)
		r.Delete("/items", cartHandler.RemoveItem)
		r.Get("/items", cartHandler.ListItems)
		r.Delete("/", cartHandler.ClearCart)
	})
}
