package response

import (
	"storefront/internal/data/entity"
)

type CartLineResponse struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type CartLineDetailResponse struct {
	CartLineResponse
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
}

func CartLineToResponse(line *entity.CartLine) *CartLineResponse {
	return &CartLineResponse{
		ID:        line.ID,
		UserID:    line.UserID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
	}
}

func CartLinesToResponse(lines []*entity.CartLineDetail) []*CartLineDetailResponse {
	out := make([]*CartLineDetailResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, &CartLineDetailResponse{
			CartLineResponse: CartLineResponse{
				ID:        line.ID,
				UserID:    line.UserID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
			},
			Name:     line.Name,
			Price:    line.Price,
			ImageURL: line.ImageURL,
		})
	}
	return out
}
