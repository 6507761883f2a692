package request

type AddCartItemRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartQuantityRequest carries the new absolute quantity for a line.
// Zero is allowed (the service treats negative values as the error case),
// so Quantity has no `required` tag.
type UpdateCartQuantityRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type RemoveCartItemRequest struct {
	UserID    int64 `json:"userId" validate:"required,gt=0"`
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}
