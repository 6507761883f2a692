package adaptor

import (
	"go.uber.org/zap"

	"storefront/internal/usecase"
)

type Handler struct {
	Auth     *AuthHandler
	Cart     *CartHandler
	Order    *OrderHandler
	Catalog  *CatalogHandler
	Wishlist *WishlistHandler
	Payment  *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Cart:     NewCartHandler(service.Cart, log),
		Order:    NewOrderHandler(service.Order, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
		Payment:  NewPaymentHandler(service.Payment, log),
	}
}
