package mocks

import (
	"context"

	"github.com/storepro/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) Browse(ctx context.Context, criteria models.FilterCriteria) (*models.CatalogPage, error) {
	args := m.Called(ctx, criteria)

	page, _ := args.Get(0).(*models.CatalogPage)

	return page, args.Error(1)
}

func (m *CatalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)

	product, _ := args.Get(0).(*models.Product)

	return product, args.Error(1)
}

func (m *CatalogService) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	categories, _ := args.Get(0).([]string)

	return categories, args.Error(1)
}
