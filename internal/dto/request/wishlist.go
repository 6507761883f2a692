package request

type WishlistItemRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}
