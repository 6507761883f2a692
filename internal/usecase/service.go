package usecase

import (
	"go.uber.org/zap"

	"storefront/internal/data/repository"
	"storefront/pkg/crypto"
	"storefront/pkg/payment"
	"storefront/pkg/storage"
	"storefront/pkg/utils"
)

type Service struct {
	Auth     AuthService
	Cart     CartService
	Order    OrderService
	Catalog  CatalogService
	Wishlist WishlistService
	Payment  PaymentService
}

// Deps are the external collaborators the services need beyond the
// repositories: the credential codec, the payment gateway and the blob
// store. All three are constructed at startup and injected here.
type Deps struct {
	Codec   *crypto.Codec
	Gateway payment.Gateway
	Blobs   storage.BlobStore
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, deps.Codec, config, log),
		Cart:     NewCartService(repo.Cart, log),
		Order:    NewOrderService(repo.Order, repo.User, log),
		Catalog:  NewCatalogService(repo.Item, repo.Category, deps.Blobs, log),
		Wishlist: NewWishlistService(repo.Wishlist, log),
		Payment:  NewPaymentService(deps.Gateway, config, log),
	}
}
