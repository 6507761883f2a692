package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type CartRepository interface {
	Upsert(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error)
	FindLine(ctx context.Context, userID, productID int64) (*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error)
	DeleteLine(ctx context.Context, userID, productID int64) error
	ClearByUser(ctx context.Context, userID int64) error
	FindByUser(ctx context.Context, userID int64) ([]*entity.CartLineDetail, error)
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log,
	}
}

// Upsert inserts the cart line or, when the (user_id, product_id) row
// already exists, overwrites its quantity. The ON CONFLICT clause rides the
// uniqueness constraint, so two concurrent adds for the same pair can never
// produce two rows.
func (cr *cartRepository) Upsert(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	query := `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity
		RETURNING id, user_id, product_id, quantity
	`

	var line entity.CartLine
	err := cr.db.QueryRow(ctx, query, userID, productID, quantity).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
	)

	if err != nil {
		cr.log.Error("Failed to upsert cart line",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("upsert cart line user %d product %d: %w", userID, productID, err)
	}

	return &line, nil
}

func (cr *cartRepository) FindLine(ctx context.Context, userID, productID int64) (*entity.CartLine, error) {
	query := `
		SELECT id, user_id, product_id, quantity
		FROM cart
		WHERE user_id = $1 AND product_id = $2
	`

	var line entity.CartLine
	err := cr.db.QueryRow(ctx, query, userID, productID).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart line",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("find cart line user %d product %d: %w", userID, productID, err)
	}

	return &line, nil
}

// UpdateQuantity overwrites the quantity of an existing line. Returns
// (nil, nil) when no row matched.
func (cr *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*entity.CartLine, error) {
	query := `
		UPDATE cart
		SET quantity = $3
		WHERE user_id = $1 AND product_id = $2
		RETURNING id, user_id, product_id, quantity
	`

	var line entity.CartLine
	err := cr.db.QueryRow(ctx, query, userID, productID, quantity).Scan(
		&line.ID,
		&line.UserID,
		&line.ProductID,
		&line.Quantity,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to update cart quantity",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("update cart quantity user %d product %d: %w", userID, productID, err)
	}

	return &line, nil
}

// DeleteLine removes one line. Deleting an absent line is not an error.
func (cr *cartRepository) DeleteLine(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`

	_, err := cr.db.Exec(ctx, query, userID, productID)
	if err != nil {
		cr.log.Error("Failed to delete cart line",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return fmt.Errorf("delete cart line user %d product %d: %w", userID, productID, err)
	}

	return nil
}

// ClearByUser removes every line for the user. Idempotent.
func (cr *cartRepository) ClearByUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM cart WHERE user_id = $1`

	_, err := cr.db.Exec(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to clear cart",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("clear cart for user %d: %w", userID, err)
	}

	return nil
}

func (cr *cartRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.CartLineDetail, error) {
	query := `
		SELECT cart.id, cart.user_id, cart.product_id, cart.quantity,
		       items.name, items.price, items.image_url
		FROM cart
		JOIN items ON cart.product_id = items.itemid
		WHERE cart.user_id = $1
		ORDER BY cart.id
	`

	rows, err := cr.db.Query(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to get cart items",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find cart items for user %d: %w", userID, err)
	}
	defer rows.Close()

	var lines []*entity.CartLineDetail
	for rows.Next() {
		var line entity.CartLineDetail
		err := rows.Scan(
			&line.ID,
			&line.UserID,
			&line.ProductID,
			&line.Quantity,
			&line.Name,
			&line.Price,
			&line.ImageURL,
		)
		if err != nil {
			cr.log.Error("Failed to scan cart row", zap.Error(err))
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		lines = append(lines, &line)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return lines, nil
}
