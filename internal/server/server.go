// Package server assembles the echo router for the storefront.
package server

import (
	"time"

	"stonestore/internal/assets"
	"stonestore/internal/caching"
	"stonestore/internal/handlers"
	"stonestore/internal/middleware"
	"stonestore/internal/services"

	_ "stonestore/docs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const apiVersion = "v1"

// Options carries everything the routes need. Cache, Media and APISunset may be nil.
type Options struct {
	Catalog   services.CatalogService
	Renderer  echo.Renderer
	DB        handlers.Pinger
	Cache     caching.CacheService
	Media     assets.MediaStore
	StaticDir string
	WebAppDir string
	APISunset *time.Time
}

func New(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = opts.Renderer
	e.HTTPErrorHandler = handlers.NewHTTPErrorHandler(e)

	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	pageHandlers := handlers.NewPageHandlers(opts.Catalog, opts.WebAppDir)
	apiHandlers := handlers.NewAPIHandlers(opts.Catalog)
	assetHandlers := handlers.NewAssetHandlers(opts.StaticDir, opts.Media)
	healthHandlers := handlers.NewHealthHandlers(opts.DB, opts.Cache, opts.Media)

	e.GET("/", pageHandlers.Home)
	e.GET("/design", pageHandlers.Home)

	e.GET("/catalog", pageHandlers.AppShell)
	e.GET("/product/:id", pageHandlers.AppShell)
	e.GET("/cart", pageHandlers.AppShell)
	e.GET("/checkout", pageHandlers.AppShell)

	e.GET("/webapp/*", pageHandlers.WebApp)

	api := e.Group("/api")
	version := middleware.NewVersionMiddleware(apiVersion, "Storefront catalog API")
	if opts.APISunset != nil {
		version.Deprecate(*opts.APISunset)
	}
	api.Use(version.VersionHeader())
	api.GET("/products", apiHandlers.Products)
	api.GET("/widgets", apiHandlers.Widgets)
	api.GET("/categories", apiHandlers.Categories)
	api.GET("/carousel", apiHandlers.Carousel)

	e.GET("/health", healthHandlers.Health)
	e.GET("/health/ready", healthHandlers.Readiness)

	e.GET("/static/*", assetHandlers.Static)
	e.GET("/favicon.ico", assetHandlers.Favicon)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
