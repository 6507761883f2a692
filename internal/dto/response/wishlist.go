package response

import (
	"storefront/internal/data/entity"
)

type WishlistItemResponse struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
}

type WishlistItemDetailResponse struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
}

func WishlistItemToResponse(item *entity.WishlistItem) *WishlistItemResponse {
	return &WishlistItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}
}

func WishlistToResponse(items []*entity.WishlistItemDetail) []*WishlistItemDetailResponse {
	out := make([]*WishlistItemDetailResponse, 0, len(items))
	for _, item := range items {
		out = append(out, &WishlistItemDetailResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
		})
	}
	return out
}
