package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type WishlistRepository interface {
	// Insert adds the pair and reports whether a row was actually created.
	// false means the pair already existed.
	Insert(ctx context.Context, userID, productID int64) (*entity.WishlistItem, bool, error)
	FindByUser(ctx context.Context, userID int64) ([]*entity.WishlistItemDetail, error)
	Delete(ctx context.Context, userID, productID int64) error
}

type wishlistRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWishlistRepository(db database.PgxIface, log *zap.Logger) WishlistRepository {
	return &wishlistRepository{
		db:  db,
		log: log,
	}
}

// Insert rides the (user_id, product_id) uniqueness constraint: ON CONFLICT
// DO NOTHING turns a duplicate add into zero affected rows instead of an
// error, so at most one row per pair ever exists.
func (wr *wishlistRepository) Insert(ctx context.Context, userID, productID int64) (*entity.WishlistItem, bool, error) {
	query := `
		INSERT INTO wishlist (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING
		RETURNING id, user_id, product_id
	`

	rows, err := wr.db.Query(ctx, query, userID, productID)
	if err != nil {
		wr.log.Error("Failed to add wishlist item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return nil, false, fmt.Errorf("add wishlist item user %d product %d: %w", userID, productID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		// conflict path: nothing inserted
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("add wishlist item user %d product %d: %w", userID, productID, err)
		}
		return nil, false, nil
	}

	var item entity.WishlistItem
	if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID); err != nil {
		wr.log.Error("Failed to scan wishlist row", zap.Error(err))
		return nil, false, fmt.Errorf("scan wishlist row: %w", err)
	}

	return &item, true, nil
}

func (wr *wishlistRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.WishlistItemDetail, error) {
	query := `
		SELECT wishlist.product_id, items.name, items.price, items.image_url
		FROM wishlist
		JOIN items ON wishlist.product_id = items.itemid
		WHERE wishlist.user_id = $1
	`

	rows, err := wr.db.Query(ctx, query, userID)
	if err != nil {
		wr.log.Error("Failed to get wishlist",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find wishlist for user %d: %w", userID, err)
	}
	defer rows.Close()

	var items []*entity.WishlistItemDetail
	for rows.Next() {
		var item entity.WishlistItemDetail
		err := rows.Scan(
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.ImageURL,
		)
		if err != nil {
			wr.log.Error("Failed to scan wishlist row", zap.Error(err))
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		wr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate wishlist rows: %w", err)
	}

	return items, nil
}

// Delete removes the pair if present. Idempotent.
func (wr *wishlistRepository) Delete(ctx context.Context, userID, productID int64) error {
	query := `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`

	_, err := wr.db.Exec(ctx, query, userID, productID)
	if err != nil {
		wr.log.Error("Failed to delete wishlist item",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID),
		)
		return fmt.Errorf("delete wishlist item user %d product %d: %w", userID, productID, err)
	}

	return nil
}
