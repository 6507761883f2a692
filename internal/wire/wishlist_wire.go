package wire

import (
	"github.com/go-chi/chi/v5"

	"storefront/internal/adaptor"
)

func wireWishlist(r chi.Router, wishlistHandler *adaptor.WishlistHandler) {
	r.Route("/api/wishlist", func(r chi.Router) {
		r.Post("/items", wishlistHandler.AddItem)
		r.Get("/items", wishlistHandler.ListItems)
		r.Delete("/items", wishlistHandler.RemoveItem)
	})
}
