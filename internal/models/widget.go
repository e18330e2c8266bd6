package models

import "time"

// Widget is a positioned content block on the storefront home page.
type Widget struct {
	ID         int64     `json:"id" db:"id"`
	WidgetType string    `json:"widget_type" db:"widget_type"`
	Title      *string   `json:"title" db:"title"`
	Content    *string   `json:"content" db:"content"`
	Config     *string   `json:"config" db:"config"` // raw JSON object text
	IsActive   bool      `json:"is_active" db:"is_active"`
	Position   int       `json:"position" db:"position"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// WidgetView is a widget as returned by the API and the home page.
type WidgetView struct {
	WidgetType string         `json:"widget_type"`
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	Config     map[string]any `json:"config"`
	Position   int            `json:"position"`
}
