package request

// OrderLine is one checkout line with its denormalized customer snapshot.
// The service inserts the snapshot as-is; it is never re-derived from the
// user profile at placement time.
type OrderLine struct {
	CustomerID      int64  `json:"customer_id" validate:"required,gt=0"`
	VendorID        int64  `json:"vendor_id" validate:"required,gt=0"`
	ProductID       int64  `json:"product_id" validate:"required,gt=0"`
	Quantity        int    `json:"quantity" validate:"required,gt=0"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
}

type PlaceOrdersRequest struct {
	Orders []OrderLine `json:"orders" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	OrderID int64  `json:"orderId" validate:"required,gt=0"`
	Status  string `json:"status" validate:"required"`
}
