package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	FindByID(ctx context.Context, itemID int64) (*entity.Item, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Item, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*entity.Item, error)
	Delete(ctx context.Context, itemID int64) (bool, error)
}

type itemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewItemRepository(db database.PgxIface, log *zap.Logger) ItemRepository {
	return &itemRepository{
		db:  db,
		log: log,
	}
}

func (ir *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (name, category, description, price, quantity, image_url, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING itemid, created_at
	`

	err := ir.db.QueryRow(ctx, query,
		item.Name,
		item.Category,
		item.Description,
		item.Price,
		item.Quantity,
		item.ImageURL,
		item.VendorID,
	).Scan(&item.ItemID, &item.CreatedAt)

	if err != nil {
		ir.log.Error("Failed to create item",
			zap.Error(err),
			zap.String("name", item.Name),
			zap.Int64("vendor_id", item.VendorID),
		)
		return fmt.Errorf("create item %s: %w", item.Name, err)
	}

	return nil
}

func (ir *itemRepository) FindByID(ctx context.Context, itemID int64) (*entity.Item, error) {
	query := `
		SELECT itemid, name, category, description, price, quantity, image_url, user_id, created_at
		FROM items
		WHERE itemid = $1
	`

	var item entity.Item
	err := ir.db.QueryRow(ctx, query, itemID).Scan(
		&item.ItemID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.Price,
		&item.Quantity,
		&item.ImageURL,
		&item.VendorID,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to find item",
			zap.Error(err),
			zap.Int64("item_id", itemID),
		)
		return nil, fmt.Errorf("find item %d: %w", itemID, err)
	}

	return &item, nil
}

func (ir *itemRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	query := `
		SELECT itemid, name, category, description, price, quantity, image_url, user_id, created_at
		FROM items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := ir.db.Query(ctx, query, limit, offset)
	if err != nil {
		ir.log.Error("Failed to list items",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list items limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var item entity.Item
		err := rows.Scan(
			&item.ItemID,
			&item.Name,
			&item.Category,
			&item.Description,
			&item.Price,
			&item.Quantity,
			&item.ImageURL,
			&item.VendorID,
			&item.CreatedAt,
		)
		if err != nil {
			ir.log.Error("Failed to scan item row", zap.Error(err))
			return nil, fmt.Errorf("scan item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		ir.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate item rows: %w", err)
	}

	return items, nil
}

func (ir *itemRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM items`

	var count int64
	if err := ir.db.QueryRow(ctx, query).Scan(&count); err != nil {
		ir.log.Error("Failed to count items", zap.Error(err))
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// UpdateQuantity overwrites stock. Returns (nil, nil) for an unknown item.
func (ir *itemRepository) UpdateQuantity(ctx context.Context, itemID int64, quantity int) (*entity.Item, error) {
	query := `
		UPDATE items
		SET quantity = $2
		WHERE itemid = $1
		RETURNING itemid, name, category, description, price, quantity, image_url, user_id, created_at
	`

	var item entity.Item
	err := ir.db.QueryRow(ctx, query, itemID, quantity).Scan(
		&item.ItemID,
		&item.Name,
		&item.Category,
		&item.Description,
		&item.Price,
		&item.Quantity,
		&item.ImageURL,
		&item.VendorID,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ir.log.Error("Failed to update item quantity",
			zap.Error(err),
			zap.Int64("item_id", itemID),
		)
		return nil, fmt.Errorf("update quantity of item %d: %w", itemID, err)
	}

	return &item, nil
}

// Delete removes the row and reports whether anything was deleted.
func (ir *itemRepository) Delete(ctx context.Context, itemID int64) (bool, error) {
	query := `DELETE FROM items WHERE itemid = $1`

	result, err := ir.db.Exec(ctx, query, itemID)
	if err != nil {
		ir.log.Error("Failed to delete item",
			zap.Error(err),
			zap.Int64("item_id", itemID),
		)
		return false, fmt.Errorf("delete item %d: %w", itemID, err)
	}

	return result.RowsAffected() > 0, nil
}
