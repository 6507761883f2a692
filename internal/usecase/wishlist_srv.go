package usecase

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/data/repository"
	"storefront/internal/dto/response"
	"storefront/pkg/apperr"
)

type WishlistService interface {
	AddItem(ctx context.Context, userID, productID int64) (*response.WishlistItemResponse, error)
	ListItems(ctx context.Context, userID int64) ([]*response.WishlistItemDetailResponse, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
}

type wishlistService struct {
	wishlist repository.WishlistRepository
	log      *zap.Logger
}

func NewWishlistService(wishlist repository.WishlistRepository, log *zap.Logger) WishlistService {
	return &wishlistService{
		wishlist: wishlist,
		log:      log,
	}
}

func (s *wishlistService) AddItem(ctx context.Context, userID, productID int64) (*response.WishlistItemResponse, error) {
	item, inserted, err := s.wishlist.Insert(ctx, userID, productID)
	if err != nil {
		s.log.Error("Failed to add wishlist item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}
	if !inserted {
		return nil, apperr.New(apperr.Conflict, "Item already exists in the wishlist")
	}

	return response.WishlistItemToResponse(item), nil
}

func (s *wishlistService) ListItems(ctx context.Context, userID int64) ([]*response.WishlistItemDetailResponse, error) {
	items, err := s.wishlist.FindByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list wishlist",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, apperr.Wrap(apperr.Store, "Database error", err)
	}

	return response.WishlistToResponse(items), nil
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID, productID int64) error {
	if err := s.wishlist.Delete(ctx, userID, productID); err != nil {
		s.log.Error("Failed to remove wishlist item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return apperr.Wrap(apperr.Store, "Database error", err)
	}
	return nil
}
