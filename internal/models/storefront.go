package models

// HomePage is the template context of the storefront page.
type HomePage struct {
	Widgets          []WidgetView
	FeaturedProducts []HomeProductView
	CarouselItems    []CarouselItemView
	CurrentYear      int
}

// ErrorResponse is the envelope every failed /api call returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ProductsResponse struct {
	Success  bool          `json:"success"`
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}

type WidgetsResponse struct {
	Success bool         `json:"success"`
	Widgets []WidgetView `json:"widgets"`
}

type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories []CategoryView `json:"categories"`
}

type CarouselResponse struct {
	Success bool               `json:"success"`
	Items   []CarouselItemView `json:"items"`
}
