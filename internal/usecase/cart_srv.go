package usecase

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/data/repository"
	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*response.CartLineResponse, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*response.CartLineResponse, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
	ListItems(ctx context.Context, userID int64) ([]*response.CartLineDetailResponse, error)
}

type cartService struct {
	cart repository.CartRepository
	log  *zap.Logger
}

func NewCartService(cart repository.CartRepository, log *zap.Logger) CartService {
	return &cartService{
		cart: cart,
		log:  log,
	}
}

// AddItem puts quantity of the product in the user's cart. A repeated add
// for the same pair overwrites the stored quantity; the upsert guarantees
// at most one row per (user, product) even under concurrent adds.
func (s *cartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (*response.CartLineResponse, error) {
	if quantity <= 0 {
		return nil, apperr.New(apperr.Validation, "Quantity must be positive")
	}

	line, err := s.cart.Upsert(ctx, userID, productID, quantity)
	if err != nil {
		s.log.Error("Failed to add cart item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, apperr.Wrap(apperr.Store, "An unexpected error occurred", err)
	}

	s.log.Info("Cart item added",
		zap.Int64("user_id", userID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", line.Quantity),
	)

	return response.CartLineToResponse(line), nil
}

// UpdateQuantity overwrites the quantity of an existing line.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*response.CartLineResponse, error) {
	if quantity < 0 {
		return nil, apperr.New(apperr.Validation, "Quantity cannot be negative")
	}

	line, err := s.cart.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		s.log.Error("Failed to update cart quantity",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, apperr.Wrap(apperr.Store, "Server error occurred", err)
	}
	if line == nil {
		return nil, apperr.New(apperr.NotFound, "Item not found in cart")
	}

	return response.CartLineToResponse(line), nil
}

// RemoveItem deletes the line if present; removing an absent line succeeds.
func (s *cartService) RemoveItem(ctx context.Context, userID, productID int64) error {
	if err := s.cart.DeleteLine(ctx, userID, productID); err != nil {
		s.log.Error("Failed to remove cart item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return apperr.Wrap(apperr.Store, "Failed to remove item", err)
	}
	return nil
}

// ClearCart deletes every line for the user; an empty cart succeeds.
func (s *cartService) ClearCart(ctx context.Context, userID int64) error {
	if err := s.cart.ClearByUser(ctx, userID); err != nil {
		s.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return apperr.Wrap(apperr.Store, "Failed to clear cart. Please try again.", err)
	}

	s.log.Info("Cart cleared", zap.Int64("user_id", userID))
	return nil
}

func (s *cartService) ListItems(ctx context.Context, userID int64) ([]*response.CartLineDetailResponse, error) {
	lines, err := s.cart.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list cart items",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}

	return response.CartLinesToResponse(lines), nil
}
