package repositories

import (
	"context"
	"fmt"

	"stonestore/internal/models"
	"stonestore/pkg/database"
)

type WidgetRepository interface {
	ListActive(ctx context.Context) ([]*models.Widget, error)
}

type widgetRepo struct {
	db database.DBTX
}

func NewWidgetRepo(db database.DBTX) WidgetRepository {
	return &widgetRepo{db: db}
}

func (r *widgetRepo) ListActive(ctx context.Context) ([]*models.Widget, error) {
	query := `
		SELECT id, widget_type, title, content, config, is_active, position, sort_order
		FROM web_widgets
		WHERE is_active = TRUE
		ORDER BY position, sort_order, id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list widgets: %w", err)
	}
	defer rows.Close()

	var widgets []*models.Widget
	for rows.Next() {
		w := &models.Widget{}
		err := rows.Scan(&w.ID, &w.WidgetType, &w.Title, &w.Content, &w.Config, &w.IsActive, &w.Position, &w.SortOrder)
		if err != nil {
			return nil, fmt.Errorf("scan widget: %w", err)
		}
		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list widgets: %w", err)
	}
	return widgets, nil
}
