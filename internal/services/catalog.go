package service

import (
	"context"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"
	"github.com/storepro/storefront/internal/cache"
	"github.com/storepro/storefront/internal/models"
	"github.com/storepro/storefront/pkg/fakestore"
)

type CatalogService interface {
	Browse(ctx context.Context, criteria models.FilterCriteria) (*models.CatalogPage, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	client fakestore.Client
	cache  cache.Cache
	policy *bluemonday.Policy
}

func NewCatalogService(client fakestore.Client, cacheStore cache.Cache) CatalogService {
	return &catalogService{
		client: client,
		cache:  cacheStore,
		// Catalog text comes from a third party; strip any markup before
		// it reaches a view.
		policy: bluemonday.StrictPolicy(),
	}
}

func (s *catalogService) Browse(ctx context.Context, criteria models.FilterCriteria) (*models.CatalogPage, error) {

	products, err := s.allProducts(ctx, criteria.Sort)
	if err != nil {
		return nil, err
	}

	return ResolvePage(products, criteria), nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.ProductKey(id)

	var cached models.Product

	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("Product cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	} else if hit {
		return &cached, nil
	}

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	s.sanitize(product)

	if err := s.cache.Set(ctx, key, product, 0); err != nil {
		slog.Warn("Product cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *catalogService) Categories(ctx context.Context) ([]string, error) {

	var cached []string

	if hit, err := s.cache.Get(ctx, cache.CategoriesKey, &cached); err != nil {
		slog.Warn("Categories cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cache.CategoriesKey, categories, 0); err != nil {
		slog.Warn("Categories cache write failed", slog.String("error", err.Error()))
	}

	return categories, nil
}

func (s *catalogService) allProducts(ctx context.Context, sortHint string) ([]models.Product, error) {

	var cached []models.Product

	if hit, err := s.cache.Get(ctx, cache.CatalogKey, &cached); err != nil {
		slog.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	products, err := s.client.ListProducts(ctx, sortHint)
	if err != nil {
		return nil, err
	}

	for i := range products {
		s.sanitize(&products[i])
	}

	if err := s.cache.Set(ctx, cache.CatalogKey, products, 0); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("error", err.Error()))
	}

	return products, nil
}

func (s *catalogService) sanitize(p *models.Product) {
	p.Title = s.policy.Sanitize(p.Title)
	p.Description = s.policy.Sanitize(p.Description)
	p.Category = s.policy.Sanitize(p.Category)
}
