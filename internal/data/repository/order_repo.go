package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*entity.Order) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error)
	FindByID(ctx context.Context, orderID int64) (*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderDetail, error)
	FindByVendor(ctx context.Context, vendorID int64) ([]*entity.OrderDetail, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// CreateBatch inserts every line in one statement via UNNEST array
// expansion and returns the created rows in insertion order. Each line
// keeps the denormalized customer/shipping snapshot it arrived with.
func (or *orderRepository) CreateBatch(ctx context.Context, orders []*entity.Order) ([]*entity.Order, error) {
	customerIDs := make([]int64, len(orders))
	vendorIDs := make([]int64, len(orders))
	productIDs := make([]int64, len(orders))
	quantities := make([]int32, len(orders))
	addresses := make([]string, len(orders))
	names := make([]string, len(orders))
	emails := make([]string, len(orders))

	for i, o := range orders {
		customerIDs[i] = o.CustomerID
		vendorIDs[i] = o.VendorID
		productIDs[i] = o.ProductID
		quantities[i] = int32(o.Quantity)
		addresses[i] = o.ShippingAddress
		names[i] = o.CustomerName
		emails[i] = o.CustomerEmail
	}

	query := `
		INSERT INTO orders (
			customer_id, vendor_id, product_id, quantity,
			shipping_address, customer_name, customer_email
		)
		SELECT * FROM UNNEST(
			$1::bigint[], $2::bigint[], $3::bigint[], $4::int[],
			$5::text[], $6::text[], $7::text[]
		)
		RETURNING id, customer_id, vendor_id, product_id, quantity,
		          shipping_address, customer_name, customer_email,
		          order_status, created_at
	`

	rows, err := or.db.Query(ctx, query,
		customerIDs, vendorIDs, productIDs, quantities,
		addresses, names, emails,
	)
	if err != nil {
		or.log.Error("Failed to place orders",
			zap.Error(err),
			zap.Int("lines", len(orders)),
		)
		return nil, fmt.Errorf("insert %d orders: %w", len(orders), err)
	}
	defer rows.Close()

	var created []*entity.Order
	for rows.Next() {
		var o entity.Order
		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.VendorID,
			&o.ProductID,
			&o.Quantity,
			&o.ShippingAddress,
			&o.CustomerName,
			&o.CustomerEmail,
			&o.Status,
			&o.CreatedAt,
		)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		created = append(created, &o)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return created, nil
}

// UpdateStatus overwrites the status. Returns (nil, nil) for an unknown order.
func (or *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	query := `
		UPDATE orders
		SET order_status = $2
		WHERE id = $1
		RETURNING id, customer_id, vendor_id, product_id, quantity,
		          shipping_address, customer_name, customer_email,
		          order_status, created_at
	`

	var o entity.Order
	err := or.db.QueryRow(ctx, query, orderID, status).Scan(
		&o.ID,
		&o.CustomerID,
		&o.VendorID,
		&o.ProductID,
		&o.Quantity,
		&o.ShippingAddress,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.Status,
		&o.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", orderID),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("update status of order %d: %w", orderID, err)
	}

	return &o, nil
}

func (or *orderRepository) FindByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	query := `
		SELECT id, customer_id, vendor_id, product_id, quantity,
		       shipping_address, customer_name, customer_email,
		       order_status, created_at
		FROM orders
		WHERE id = $1
	`

	var o entity.Order
	err := or.db.QueryRow(ctx, query, orderID).Scan(
		&o.ID,
		&o.CustomerID,
		&o.VendorID,
		&o.ProductID,
		&o.Quantity,
		&o.ShippingAddress,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.Status,
		&o.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find order %d: %w", orderID, err)
	}

	return &o, nil
}

func (or *orderRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.OrderDetail, error) {
	query := `
		SELECT o.id, o.customer_id, o.vendor_id, o.product_id, o.quantity,
		       o.shipping_address, o.customer_name, o.customer_email,
		       o.order_status, o.created_at,
		       i.name AS product_name, i.image_url, i.price
		FROM orders o
		INNER JOIN items i ON o.product_id = i.itemid
		WHERE o.customer_id = $1
		ORDER BY o.created_at DESC
	`

	return or.queryDetails(ctx, query, customerID, "customer")
}

func (or *orderRepository) FindByVendor(ctx context.Context, vendorID int64) ([]*entity.OrderDetail, error) {
	query := `
		SELECT o.id, o.customer_id, o.vendor_id, o.product_id, o.quantity,
		       o.shipping_address, o.customer_name, o.customer_email,
		       o.order_status, o.created_at,
		       i.name AS product_name, i.image_url, i.price
		FROM orders o
		INNER JOIN items i ON o.product_id = i.itemid
		WHERE o.vendor_id = $1
		ORDER BY o.created_at DESC
	`

	return or.queryDetails(ctx, query, vendorID, "vendor")
}

func (or *orderRepository) queryDetails(ctx context.Context, query string, id int64, side string) ([]*entity.OrderDetail, error) {
	rows, err := or.db.Query(ctx, query, id)
	if err != nil {
		or.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("side", side),
			zap.Int64("id", id),
		)
		return nil, fmt.Errorf("list %s orders for %d: %w", side, id, err)
	}
	defer rows.Close()

	var details []*entity.OrderDetail
	for rows.Next() {
		var d entity.OrderDetail
		err := rows.Scan(
			&d.ID,
			&d.CustomerID,
			&d.VendorID,
			&d.ProductID,
			&d.Quantity,
			&d.ShippingAddress,
			&d.CustomerName,
			&d.CustomerEmail,
			&d.Status,
			&d.CreatedAt,
			&d.ProductName,
			&d.ImageURL,
			&d.Price,
		)
		if err != nil {
			or.log.Error("Failed to scan order detail row", zap.Error(err))
			return nil, fmt.Errorf("scan order detail row: %w", err)
		}
		details = append(details, &d)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate order detail rows: %w", err)
	}

	return details, nil
}
