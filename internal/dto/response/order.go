package response

import (
	"time"

	"storefront/internal/data/entity"
)

type OrderResponse struct {
	ID              int64              `json:"id"`
	CustomerID      int64              `json:"customer_id"`
	VendorID        int64              `json:"vendor_id"`
	ProductID       int64              `json:"product_id"`
	Quantity        int                `json:"quantity"`
	ShippingAddress string             `json:"shipping_address"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	Status          entity.OrderStatus `json:"order_status"`
	CreatedAt       time.Time          `json:"created_at"`
}

type OrderDetailResponse struct {
	OrderResponse
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
}

func OrderToResponse(o *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		VendorID:        o.VendorID,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		ShippingAddress: o.ShippingAddress,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderToResponse(o))
	}
	return out
}

func OrderDetailsToResponse(details []*entity.OrderDetail) []*OrderDetailResponse {
	out := make([]*OrderDetailResponse, 0, len(details))
	for _, d := range details {
		out = append(out, &OrderDetailResponse{
			OrderResponse: *OrderToResponse(&d.Order),
			ProductName:   d.ProductName,
			ImageURL:      d.ImageURL,
			Price:         d.Price,
		})
	}
	return out
}
