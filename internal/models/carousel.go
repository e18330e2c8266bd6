package models

import "time"

// CarouselItem is a slide in the home page carousel.
type CarouselItem struct {
	ID         int64     `json:"id" db:"id"`
	Title      *string   `json:"title" db:"title"`
	Subtitle   *string   `json:"subtitle" db:"subtitle"`
	ImageURL   string    `json:"image_url" db:"image_url"`
	LinkURL    *string   `json:"link_url" db:"link_url"`
	ButtonText *string   `json:"button_text" db:"button_text"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	SortOrder  int       `json:"sort_order" db:"sort_order"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CarouselItemView struct {
	Title      *string `json:"title"`
	Subtitle   *string `json:"subtitle"`
	ImageURL   string  `json:"image_url"`
	LinkURL    *string `json:"link_url"`
	ButtonText *string `json:"button_text"`
}
