package repositories

import (
	"context"
	"fmt"

	"stonestore/internal/models"
	"stonestore/pkg/database"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*models.Category, error)
}

type categoryRepo struct {
	db database.DBTX
}

func NewCategoryRepo(db database.DBTX) CategoryRepository {
	return &categoryRepo{db: db}
}

// List returns every category, nested ones included, ordered for display.
func (r *categoryRepo) List(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT id, name, slug, parent_id, sort_order
		FROM categories
		ORDER BY sort_order, name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
