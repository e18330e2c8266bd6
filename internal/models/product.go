package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductFilter holds the listing criteria for storefront product queries
type ProductFilter struct {
	Limit        int     `json:"limit"`
	Offset       int     `json:"offset"`
	Category     *string `json:"category,omitempty"` // category slug
	FeaturedOnly bool    `json:"featured_only"`
}

// Product is a catalog item. Only active products with stock are visible.
type Product struct {
	ID              int64               `json:"id" db:"id"`
	Name            string              `json:"name" db:"name"`
	Slug            string              `json:"slug" db:"slug"`
	Description     *string             `json:"description" db:"description"`
	Price           decimal.Decimal     `json:"price" db:"price"`
	CompareAtPrice  decimal.NullDecimal `json:"compare_at_price" db:"compare_at_price"`
	ImageURL        *string             `json:"image_url" db:"image_url"`
	Gallery         *string             `json:"gallery" db:"gallery"` // raw JSON array text
	CategoryID      *int64              `json:"category_id" db:"category_id"`
	CategoryName    *string             `json:"category_name" db:"category_name"`
	Brand           *string             `json:"brand" db:"brand"`
	SKU             *string             `json:"sku" db:"sku"`
	Color           *string             `json:"color" db:"color"`
	Size            *string             `json:"size" db:"size"`
	Material        *string             `json:"material" db:"material"`
	DiscountPercent int                 `json:"discount_percent" db:"discount_percent"`
	Quantity        int                 `json:"quantity" db:"quantity"`
	IsFeatured      bool                `json:"is_featured" db:"is_featured"`
	IsActive        bool                `json:"is_active" db:"is_active"`
	Views           int                 `json:"views" db:"views"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at" db:"updated_at"`
}

// ProductView is the API representation of a product.
type ProductView struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Slug                  string   `json:"slug"`
	Description           *string  `json:"description"`
	Price                 float64  `json:"price"`
	CompareAtPrice        *float64 `json:"compare_at_price"`
	ImageURL              string   `json:"image_url"`
	MainImage             string   `json:"main_image"`
	Gallery               []string `json:"gallery"`
	Brand                 *string  `json:"brand"`
	DiscountPercent       int      `json:"discount_percent"`
	Quantity              int      `json:"quantity"`
	Color                 *string  `json:"color"`
	Size                  *string  `json:"size"`
	Material              *string  `json:"material"`
	IsFeatured            bool     `json:"is_featured"`
	CategoryName          *string  `json:"category_name"`
	PriceFormatted        string   `json:"price_formatted"`
	ComparePriceFormatted string   `json:"compare_price_formatted,omitempty"`
}

// HomeProductView is the reduced projection shown in the home page grid.
type HomeProductView struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	PriceFormatted  string  `json:"price_formatted"`
	ImageURL        string  `json:"image_url"`
	DiscountPercent int     `json:"discount_percent"`
	Brand           *string `json:"brand"`
}
