package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"stonestore/internal/assets"
	"stonestore/internal/caching"
	"stonestore/internal/config"
	"stonestore/internal/handlers"
	"stonestore/internal/jobs"
	"stonestore/internal/render"
	"stonestore/internal/repositories"
	"stonestore/internal/schema"
	"stonestore/internal/server"
	"stonestore/internal/services"
	"stonestore/pkg/database"
)

// @title STONE Storefront API
// @version 1.0
// @description Read-only catalog endpoints backing the STONE storefront and web app.
// @BasePath /
func main() {
	exitCode := 0
	// Registered first so it runs after every other deferred cleanup.
	defer func() {
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: failed to load .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("STORE_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	renderer, err := render.NewTemplateRenderer(cfg.TemplatesDir)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer database.ClosePool(pool)

	cacheSvc := caching.NewNoopCacheService()
	var healthCache caching.CacheService
	if cfg.CacheEnabled() {
		cacheSvc = caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		healthCache = cacheSvc
	}

	// Seeding problems are logged; the storefront still starts.
	if err := schema.NewInitializer(pool).Prepare(ctx, cacheSvc); err != nil {
		log.Printf("ERROR: database initialization failed: %v", err)
	}

	var media assets.MediaStore
	if cfg.MediaEnabled() {
		media, err = assets.NewMinioMediaStore(assets.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			Prefix:    cfg.Minio.Prefix,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			log.Printf("WARN: media store disabled: %v", err)
			media = nil
		}
	}

	catalog := services.NewCatalogService(
		repositories.NewWidgetRepo(pool),
		repositories.NewCategoryRepo(pool),
		repositories.NewCarouselRepo(pool),
		repositories.NewProductRepo(pool),
		cacheSvc,
		cfg.CacheTTL,
	)

	if cfg.CacheEnabled() && cfg.CacheWarmInterval > 0 {
		warmer, err := jobs.NewCacheWarmScheduler(catalog, cfg.CacheWarmInterval)
		if err != nil {
			log.Printf("WARN: cache warm scheduler disabled: %v", err)
		} else {
			warmer.Start()
			defer func() {
				if err := warmer.Stop(); err != nil {
					log.Printf("WARN: cache warm scheduler shutdown: %v", err)
				}
			}()
		}
	}

	// Validate already rejected an unparsable sunset.
	sunset, _ := cfg.Sunset()

	e := server.New(server.Options{
		Catalog:   catalog,
		Renderer:  renderer,
		DB:        handlers.Pinger(pool),
		Cache:     healthCache,
		Media:     media,
		StaticDir: cfg.StaticDir,
		WebAppDir: cfg.WebAppDir,
		APISunset: sunset,
	})

	addr := cfg.Addr()
	base := "http://" + addr
	webAppDir, _ := filepath.Abs(cfg.WebAppDir)
	log.Printf("Starting STONE storefront on %s", addr)
	log.Printf("Web app directory: %s", webAppDir)
	log.Printf("Storefront: %s/", base)
	log.Printf("Web app: %s/webapp/", base)
	log.Printf("Products API: %s/api/products", base)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if err := run(ctx, e, serverErr, cfg.ShutdownTimeout); err != nil {
		exitCode = 1
	}
}

// run blocks until a shutdown signal or a server start failure, then shuts
// the server down. The start error, if any, is returned.
func run(ctx context.Context, e *echo.Echo, serverErr <-chan error, timeout time.Duration) error {
	var startErr error
	select {
	case <-ctx.Done():
		log.Println("Shutting down server...")
	case err, ok := <-serverErr:
		if ok {
			log.Printf("ERROR: server error: %v", err)
			startErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: server shutdown: %v", err)
	}
	return startErr
}
