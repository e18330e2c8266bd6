package handlers

import (
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"
	"time"

	"stonestore/internal/assets"
	"stonestore/internal/render"
	"stonestore/internal/services"

	"github.com/labstack/echo/v4"
)

const webAppIndex = "index.html"

// PageHandlers serves the rendered storefront and the web app bundle.
type PageHandlers struct {
	catalog   services.CatalogService
	webAppDir string
	now       func() time.Time
}

func NewPageHandlers(catalog services.CatalogService, webAppDir string) *PageHandlers {
	return &PageHandlers{
		catalog:   catalog,
		webAppDir: webAppDir,
		now:       time.Now,
	}
}

// Home renders the storefront for / and /design.
func (h *PageHandlers) Home(c echo.Context) error {
	page, err := h.catalog.HomePage(c.Request().Context(), h.now())
	if err != nil {
		return h.errorPage(c, err)
	}
	if err := c.Render(http.StatusOK, render.StorefrontTemplate, page); err != nil {
		return h.errorPage(c, err)
	}
	return nil
}

func (h *PageHandlers) errorPage(c echo.Context, err error) error {
	log.Printf("ERROR: storefront page: %v", err)
	body := fmt.Sprintf(`<html>
<body>
    <h1>Page failed to load</h1>
    <p>%s</p>
    <p>Check the server logs</p>
</body>
</html>`, html.EscapeString(err.Error()))
	return c.HTML(http.StatusInternalServerError, body)
}

// AppShell serves the web app entry page for /catalog, /product/:id, /cart
// and /checkout. The client does its own routing.
func (h *PageHandlers) AppShell(c echo.Context) error {
	return h.serveWebApp(c, webAppIndex)
}

// WebApp serves files from the web app bundle. Unknown .html pages fall back
// to the entry page; any other missing file is a 404.
func (h *PageHandlers) WebApp(c echo.Context) error {
	name := c.Param("*")
	if name == "" || strings.HasSuffix(name, "/") {
		name += webAppIndex
	}
	return h.serveWebApp(c, name)
}

func (h *PageHandlers) serveWebApp(c echo.Context, name string) error {
	if full, ok := assets.Resolve(h.webAppDir, name); ok {
		return c.File(full)
	}
	if strings.HasSuffix(name, ".html") {
		if full, ok := assets.Resolve(h.webAppDir, webAppIndex); ok {
			return c.File(full)
		}
	}
	return echo.ErrNotFound
}
