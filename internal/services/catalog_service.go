package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"stonestore/internal/caching"
	"stonestore/internal/models"
	"stonestore/internal/presenter"
	"stonestore/internal/repositories"
)

const (
	HomeCarouselLimit   = 3
	HomeProductLimit    = 4
	APICarouselLimit    = 5
	DefaultProductLimit = 12
)

const (
	widgetsCacheKey    = "catalog:widgets"
	categoriesCacheKey = "catalog:categories"
)

func carouselCacheKey(limit int) string {
	return fmt.Sprintf("catalog:carousel:%d", limit)
}

// CatalogService serves the shaped storefront reads. Widgets, categories and
// carousel slides go through the cache; product listings always hit the
// database so stock changes show up immediately.
type CatalogService interface {
	Widgets(ctx context.Context) ([]models.WidgetView, error)
	Categories(ctx context.Context) ([]models.CategoryView, error)
	Carousel(ctx context.Context, limit int) ([]models.CarouselItemView, error)
	Products(ctx context.Context, filter models.ProductFilter) ([]models.ProductView, error)
	HomePage(ctx context.Context, now time.Time) (*models.HomePage, error)
	// WarmCache reloads every cached read from the database.
	WarmCache(ctx context.Context) error
}

type catalogService struct {
	widgetRepo   repositories.WidgetRepository
	categoryRepo repositories.CategoryRepository
	carouselRepo repositories.CarouselRepository
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
	cacheTTL     time.Duration
}

func NewCatalogService(widgetRepo repositories.WidgetRepository, categoryRepo repositories.CategoryRepository, carouselRepo repositories.CarouselRepository, productRepo repositories.ProductRepository, cacheService caching.CacheService, cacheTTL time.Duration) CatalogService {
	if cacheService == nil {
		cacheService = caching.NewNoopCacheService()
	}
	return &catalogService{
		widgetRepo:   widgetRepo,
		categoryRepo: categoryRepo,
		carouselRepo: carouselRepo,
		productRepo:  productRepo,
		cacheService: cacheService,
		cacheTTL:     cacheTTL,
	}
}

// readThrough serves key from the cache, falling back to load. Cache failures
// are logged and never fail the read.
func readThrough[T any](ctx context.Context, s *catalogService, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T
	hit, err := s.cacheService.GetJSON(ctx, key, &cached)
	if err != nil {
		log.Printf("WARN: cache read %s failed: %v", key, err)
	} else if hit {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}
	s.store(ctx, key, value)
	return value, nil
}

func (s *catalogService) store(ctx context.Context, key string, value any) {
	if err := s.cacheService.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		log.Printf("WARN: cache write %s failed: %v", key, err)
	}
}

func (s *catalogService) Widgets(ctx context.Context) ([]models.WidgetView, error) {
	return readThrough(ctx, s, widgetsCacheKey, s.loadWidgets)
}

func (s *catalogService) loadWidgets(ctx context.Context) ([]models.WidgetView, error) {
	widgets, err := s.widgetRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.WidgetView, 0, len(widgets))
	for _, w := range widgets {
		views = append(views, presenter.ShapeWidget(w))
	}
	return views, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]models.CategoryView, error) {
	return readThrough(ctx, s, categoriesCacheKey, s.loadCategories)
}

func (s *catalogService) loadCategories(ctx context.Context) ([]models.CategoryView, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, presenter.ShapeCategory(c))
	}
	return views, nil
}

func (s *catalogService) Carousel(ctx context.Context, limit int) ([]models.CarouselItemView, error) {
	return readThrough(ctx, s, carouselCacheKey(limit), func(ctx context.Context) ([]models.CarouselItemView, error) {
		return s.loadCarousel(ctx, limit)
	})
}

func (s *catalogService) loadCarousel(ctx context.Context, limit int) ([]models.CarouselItemView, error) {
	items, err := s.carouselRepo.ListActive(ctx, limit)
	if err != nil {
		return nil, err
	}
	views := make([]models.CarouselItemView, 0, len(items))
	for _, item := range items {
		views = append(views, presenter.ShapeCarouselItem(item))
	}
	return views, nil
}

func (s *catalogService) Products(ctx context.Context, filter models.ProductFilter) ([]models.ProductView, error) {
	products, err := s.productRepo.ListVisible(ctx, filter)
	if err != nil {
		return nil, err
	}
	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, presenter.ShapeProduct(p))
	}
	return views, nil
}

func (s *catalogService) HomePage(ctx context.Context, now time.Time) (*models.HomePage, error) {
	widgets, err := s.Widgets(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.ListHome(ctx, HomeProductLimit)
	if err != nil {
		return nil, err
	}
	featured := make([]models.HomeProductView, 0, len(products))
	for _, p := range products {
		featured = append(featured, presenter.ShapeHomeProduct(p))
	}

	carousel, err := s.Carousel(ctx, HomeCarouselLimit)
	if err != nil {
		return nil, err
	}

	return &models.HomePage{
		Widgets:          widgets,
		FeaturedProducts: featured,
		CarouselItems:    carousel,
		CurrentYear:      now.Year(),
	}, nil
}

func (s *catalogService) WarmCache(ctx context.Context) error {
	widgets, err := s.loadWidgets(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, widgetsCacheKey, widgets)

	categories, err := s.loadCategories(ctx)
	if err != nil {
		return err
	}
	s.store(ctx, categoriesCacheKey, categories)

	for _, limit := range []int{HomeCarouselLimit, APICarouselLimit} {
		items, err := s.loadCarousel(ctx, limit)
		if err != nil {
			return err
		}
		s.store(ctx, carouselCacheKey(limit), items)
	}
	return nil
}
