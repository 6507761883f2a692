package request

type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
	VendorID    int64   `json:"user_id" validate:"required,gt=0"`
}

type UpdateItemQuantityRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"`
}

type DeleteItemRequest struct {
	ItemID   int64  `json:"itemid" validate:"required,gt=0"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
