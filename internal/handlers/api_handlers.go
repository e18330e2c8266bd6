package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"stonestore/internal/models"
	"stonestore/internal/services"

	"github.com/labstack/echo/v4"
)

// APIHandlers serves the read-only JSON catalog endpoints.
type APIHandlers struct {
	catalog services.CatalogService
}

func NewAPIHandlers(catalog services.CatalogService) *APIHandlers {
	return &APIHandlers{catalog: catalog}
}

// parsePaging reads a non-negative integer query parameter. Absent or empty
// values fall back to def.
func parsePaging(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a non-negative integer")
	}
	return n, nil
}

func apiFailure(c echo.Context, what string, err error) error {
	log.Printf("ERROR: %s: %v", what, err)
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// Products godoc
// @Summary List visible products
// @Description Active products with stock, featured first then newest.
// @Tags catalog
// @Produce json
// @Param limit query int false "Page size" default(12)
// @Param offset query int false "Rows to skip" default(0)
// @Param category query string false "Category slug"
// @Param featured query string false "Only featured products when true"
// @Success 200 {object} models.ProductsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (h *APIHandlers) Products(c echo.Context) error {
	limit, err := parsePaging(c, "limit", services.DefaultProductLimit)
	if err != nil {
		return err
	}
	offset, err := parsePaging(c, "offset", 0)
	if err != nil {
		return err
	}

	filter := models.ProductFilter{
		Limit:        limit,
		Offset:       offset,
		FeaturedOnly: strings.EqualFold(c.QueryParam("featured"), "true"),
	}
	if category := c.QueryParam("category"); category != "" {
		filter.Category = &category
	}

	products, err := h.catalog.Products(c.Request().Context(), filter)
	if err != nil {
		return apiFailure(c, "products api", err)
	}

	return c.JSON(http.StatusOK, models.ProductsResponse{
		Success:  true,
		Products: products,
		Total:    len(products),
		Limit:    limit,
		Offset:   offset,
	})
}

// Widgets godoc
// @Summary List active widgets
// @Tags catalog
// @Produce json
// @Success 200 {object} models.WidgetsResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/widgets [get]
func (h *APIHandlers) Widgets(c echo.Context) error {
	widgets, err := h.catalog.Widgets(c.Request().Context())
	if err != nil {
		return apiFailure(c, "widgets api", err)
	}
	return c.JSON(http.StatusOK, models.WidgetsResponse{Success: true, Widgets: widgets})
}

// Categories godoc
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} models.CategoriesResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/categories [get]
func (h *APIHandlers) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return apiFailure(c, "categories api", err)
	}
	return c.JSON(http.StatusOK, models.CategoriesResponse{Success: true, Categories: categories})
}

// Carousel godoc
// @Summary List carousel slides
// @Tags catalog
// @Produce json
// @Success 200 {object} models.CarouselResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/carousel [get]
func (h *APIHandlers) Carousel(c echo.Context) error {
	items, err := h.catalog.Carousel(c.Request().Context(), services.APICarouselLimit)
	if err != nil {
		return apiFailure(c, "carousel api", err)
	}
	return c.JSON(http.StatusOK, models.CarouselResponse{Success: true, Items: items})
}
