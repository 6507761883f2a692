package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"storefront/internal/data/entity"
	"storefront/pkg/database"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log,
	}
}

func (cr *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`

	if err := cr.db.QueryRow(ctx, query, category.Name).Scan(&category.ID); err != nil {
		cr.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT id, name FROM categories ORDER BY name ASC`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			cr.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}
