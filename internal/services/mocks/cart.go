package mocks

import (
	"context"

	"github.com/storepro/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (m *CartService) Get() *models.Cart {
	args := m.Called()

	cart, _ := args.Get(0).(*models.Cart)

	return cart
}

func (m *CartService) AddToCart(ctx context.Context, product models.Product, quantity int) *models.Cart {
	args := m.Called(ctx, product, quantity)

	cart, _ := args.Get(0).(*models.Cart)

	return cart
}

func (m *CartService) RemoveFromCart(ctx context.Context, productID int64) *models.Cart {
	args := m.Called(ctx, productID)

	cart, _ := args.Get(0).(*models.Cart)

	return cart
}

func (m *CartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) *models.Cart {
	args := m.Called(ctx, productID, quantity)

	cart, _ := args.Get(0).(*models.Cart)

	return cart
}

func (m *CartService) ClearCart(ctx context.Context) *models.Cart {
	args := m.Called(ctx)

	cart, _ := args.Get(0).(*models.Cart)

	return cart
}
