package repositories

import (
	"context"
	"fmt"

	"stonestore/internal/models"
	"stonestore/pkg/database"
)

type CarouselRepository interface {
	ListActive(ctx context.Context, limit int) ([]*models.CarouselItem, error)
}

type carouselRepo struct {
	db database.DBTX
}

func NewCarouselRepo(db database.DBTX) CarouselRepository {
	return &carouselRepo{db: db}
}

func (r *carouselRepo) ListActive(ctx context.Context, limit int) ([]*models.CarouselItem, error) {
	query := `
		SELECT id, title, subtitle, image_url, link_url, button_text, is_active, sort_order
		FROM carousel_items
		WHERE is_active = TRUE
		ORDER BY sort_order, id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list carousel items: %w", err)
	}
	defer rows.Close()

	var items []*models.CarouselItem
	for rows.Next() {
		item := &models.CarouselItem{}
		err := rows.Scan(&item.ID, &item.Title, &item.Subtitle, &item.ImageURL, &item.LinkURL, &item.ButtonText, &item.IsActive, &item.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("scan carousel item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list carousel items: %w", err)
	}
	return items, nil
}
