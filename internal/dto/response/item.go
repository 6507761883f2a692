package response

import (
	"time"

	"storefront/internal/data/entity"
)

type ItemResponse struct {
	ItemID      int64     `json:"itemid"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageURL    string    `json:"image_url"`
	VendorID    int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ItemListResponse struct {
	Items      []*ItemResponse `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
	TotalPages int             `json:"total_pages"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

func ItemToResponse(item *entity.Item) *ItemResponse {
	return &ItemResponse{
		ItemID:      item.ItemID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Price:       item.Price,
		Quantity:    item.Quantity,
		ImageURL:    item.ImageURL,
		VendorID:    item.VendorID,
		CreatedAt:   item.CreatedAt,
	}
}

func ItemsToResponse(items []*entity.Item) []*ItemResponse {
	out := make([]*ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ItemToResponse(item))
	}
	return out
}

func CategoriesToResponse(categories []*entity.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, &CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out
}
