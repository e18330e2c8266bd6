package handlers

import (
	"context"
	"time"

	"stonestore/internal/assets"
	"stonestore/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Widgets(ctx context.Context) ([]models.WidgetView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.WidgetView), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]models.CategoryView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryView), args.Error(1)
}

func (m *MockCatalogService) Carousel(ctx context.Context, limit int) ([]models.CarouselItemView, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CarouselItemView), args.Error(1)
}

func (m *MockCatalogService) Products(ctx context.Context, filter models.ProductFilter) ([]models.ProductView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductView), args.Error(1)
}

func (m *MockCatalogService) HomePage(ctx context.Context, now time.Time) (*models.HomePage, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomePage), args.Error(1)
}

func (m *MockCatalogService) WarmCache(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Open(ctx context.Context, name string) (*assets.MediaObject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.MediaObject), args.Error(1)
}

func (m *MockMediaStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
