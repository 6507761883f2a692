package repository

import (
	"errors"

	"go.uber.org/zap"

	"storefront/pkg/database"
)

// ErrDuplicateEmail is returned by UserRepository.Create when the unique
// constraint on the encrypted email column is violated.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository struct {
	User     UserRepository
	Item     ItemRepository
	Category CategoryRepository
	Cart     CartRepository
	Order    OrderRepository
	Wishlist WishlistRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Item:     NewItemRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Cart:     NewCartRepository(db, log),
		Order:    NewOrderRepository(db, log),
		Wishlist: NewWishlistRepository(db, log),
	}
}
