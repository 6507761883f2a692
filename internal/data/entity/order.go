package entity

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// Order is one placed line. ShippingAddress, CustomerName and CustomerEmail
// are a snapshot captured at order time; later profile edits never touch
// historical orders.
type Order struct {
	Base
	CustomerID      int64       `db:"customer_id"`
	VendorID        int64       `db:"vendor_id"`
	ProductID       int64       `db:"product_id"`
	Quantity        int         `db:"quantity"`
	ShippingAddress string      `db:"shipping_address"`
	CustomerName    string      `db:"customer_name"`
	CustomerEmail   string      `db:"customer_email"`
	Status          OrderStatus `db:"order_status"`
}

// OrderDetail is an order joined with its product's display fields.
type OrderDetail struct {
	Order
	ProductName string  `db:"product_name"`
	ImageURL    string  `db:"image_url"`
	Price       float64 `db:"price"`
}
