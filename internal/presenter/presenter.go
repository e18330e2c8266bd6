// Package presenter turns stored rows into response-ready views. Every function
// here is pure; malformed stored JSON is recovered, never reported.
package presenter

import (
	"encoding/json"
	"strings"

	"stonestore/internal/models"

	"github.com/shopspring/decimal"
)

// PlaceholderImage is served wherever a row has no usable image.
const PlaceholderImage = "/static/images/placeholder.jpg"

var hundred = decimal.NewFromInt(100)

// ResolveImage returns url unless it is missing, blank or the literal "None".
func ResolveImage(url *string) string {
	if url == nil {
		return PlaceholderImage
	}
	u := strings.TrimSpace(*url)
	if u == "" || u == "None" {
		return PlaceholderImage
	}
	return *url
}

// FormatPrice renders a whole-dollar price. Halves round to even, so 2.5
// becomes "$2" and 129.6 becomes "$130".
func FormatPrice(amount decimal.Decimal) string {
	return "$" + amount.StringFixedBank(0)
}

// ComputeDiscount derives the discount from the compare-at price when it is
// above price, overriding the stored percentage. Otherwise stored is kept.
func ComputeDiscount(price decimal.Decimal, compareAt decimal.NullDecimal, stored int) int {
	if !compareAt.Valid || !compareAt.Decimal.GreaterThan(price) {
		return stored
	}
	pct := compareAt.Decimal.Sub(price).Mul(hundred).Div(compareAt.Decimal).RoundBank(0)
	return int(pct.IntPart())
}

// ParseWidgetConfig decodes a widget's config column into an object. Missing,
// malformed and non-object values all yield an empty object.
func ParseWidgetConfig(raw *string) map[string]any {
	config := map[string]any{}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return config
	}
	var parsed map[string]any
	if err := json.Unmarshal([]byte(*raw), &parsed); err != nil || parsed == nil {
		return config
	}
	return parsed
}

// ParseGallery decodes the gallery column into image URLs.
func ParseGallery(raw *string) []string {
	gallery := []string{}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return gallery
	}
	var parsed []string
	if err := json.Unmarshal([]byte(*raw), &parsed); err != nil || parsed == nil {
		return gallery
	}
	return parsed
}

func ShapeWidget(w *models.Widget) models.WidgetView {
	return models.WidgetView{
		WidgetType: w.WidgetType,
		Title:      w.Title,
		Content:    w.Content,
		Config:     ParseWidgetConfig(w.Config),
		Position:   w.Position,
	}
}

func ShapeCategory(c *models.Category) models.CategoryView {
	return models.CategoryView{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		ParentID: c.ParentID,
	}
}

func ShapeCarouselItem(item *models.CarouselItem) models.CarouselItemView {
	return models.CarouselItemView{
		Title:      item.Title,
		Subtitle:   item.Subtitle,
		ImageURL:   ResolveImage(&item.ImageURL),
		LinkURL:    item.LinkURL,
		ButtonText: item.ButtonText,
	}
}

// ShapeProduct builds the API view: resolved image, main image, parsed
// gallery, formatted prices and the effective discount.
func ShapeProduct(p *models.Product) models.ProductView {
	image := ResolveImage(p.ImageURL)
	price, _ := p.Price.Float64()

	view := models.ProductView{
		ID:              p.ID,
		Name:            p.Name,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           price,
		ImageURL:        image,
		MainImage:       image,
		Gallery:         ParseGallery(p.Gallery),
		Brand:           p.Brand,
		DiscountPercent: ComputeDiscount(p.Price, p.CompareAtPrice, p.DiscountPercent),
		Quantity:        p.Quantity,
		Color:           p.Color,
		Size:            p.Size,
		Material:        p.Material,
		IsFeatured:      p.IsFeatured,
		CategoryName:    p.CategoryName,
		PriceFormatted:  FormatPrice(p.Price),
	}

	if p.CompareAtPrice.Valid {
		compare, _ := p.CompareAtPrice.Decimal.Float64()
		view.CompareAtPrice = &compare
		if p.CompareAtPrice.Decimal.IsPositive() {
			view.ComparePriceFormatted = FormatPrice(p.CompareAtPrice.Decimal)
		}
	}

	return view
}

func ShapeHomeProduct(p *models.Product) models.HomeProductView {
	price, _ := p.Price.Float64()
	return models.HomeProductView{
		ID:              p.ID,
		Name:            p.Name,
		Price:           price,
		PriceFormatted:  FormatPrice(p.Price),
		ImageURL:        ResolveImage(p.ImageURL),
		DiscountPercent: p.DiscountPercent,
		Brand:           p.Brand,
	}
}
