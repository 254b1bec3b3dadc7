package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/storepro/storefront/internal/models"
	repository "github.com/storepro/storefront/internal/repositories"
)

// CartService holds the session cart. No operation ever signals an error:
// missing ids are no-ops, non-positive quantities behave as removal, and a
// failed snapshot save is logged while the in-memory state stands.
type CartService interface {
	Get() *models.Cart
	AddToCart(ctx context.Context, product models.Product, quantity int) *models.Cart
	RemoveFromCart(ctx context.Context, productID int64) *models.Cart
	UpdateQuantity(ctx context.Context, productID int64, quantity int) *models.Cart
	ClearCart(ctx context.Context) *models.Cart
}

type cartService struct {
	mu        sync.Mutex
	cart      models.Cart
	snapshots repository.SnapshotRepository
}

// NewCartService loads the persisted cart blob; a missing or unreadable blob
// starts an empty cart. The total is always recomputed, never trusted from
// the stored blob.
func NewCartService(ctx context.Context, snapshots repository.SnapshotRepository) CartService {

	s := &cartService{snapshots: snapshots}

	data, err := snapshots.Load(ctx, repository.CartStateKey)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Warn("Failed to load cart snapshot, starting empty", slog.String("error", err.Error()))
		}
		return s
	}

	if err := json.Unmarshal(data, &s.cart); err != nil {
		slog.Warn("Corrupt cart snapshot, starting empty", slog.String("error", err.Error()))
		s.cart = models.Cart{}
		return s
	}

	s.cart.Total = s.cart.CalculateTotal()

	return s
}

func (s *cartService) Get() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *cartService) AddToCart(ctx context.Context, product models.Product, quantity int) *models.Cart {

	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.copyItems()

	found := false

	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Quantity += quantity
			found = true

			break
		}
	}

	if !found {
		// first add appends, preserving first-added-first order
		items = append(items, models.CartItem{Product: product, Quantity: quantity})
	}

	s.replace(ctx, items)

	return s.snapshot()
}

func (s *cartService) RemoveFromCart(ctx context.Context, productID int64) *models.Cart {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, s.itemsWithout(productID))

	return s.snapshot()
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) *models.Cart {

	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.replace(ctx, s.itemsWithout(productID))
		return s.snapshot()
	}

	items := s.copyItems()

	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = quantity

			break
		}
	}

	s.replace(ctx, items)

	return s.snapshot()
}

func (s *cartService) ClearCart(ctx context.Context) *models.Cart {

	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace(ctx, []models.CartItem{})

	return s.snapshot()
}

// replace swaps in the next item list as one indivisible state change and
// persists the result. Callers must hold the mutex.
func (s *cartService) replace(ctx context.Context, items []models.CartItem) {

	s.cart.Items = items
	s.cart.Total = s.cart.CalculateTotal()
	s.cart.UpdatedAt = time.Now()

	data, err := json.Marshal(s.cart)
	if err != nil {
		slog.Error("Failed to marshal cart snapshot", slog.String("error", err.Error()))
		return
	}

	if err := s.snapshots.Save(ctx, repository.CartStateKey, data); err != nil {
		slog.Warn("Failed to persist cart snapshot", slog.String("error", err.Error()))
	}
}

func (s *cartService) copyItems() []models.CartItem {
	items := make([]models.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	return items
}

func (s *cartService) itemsWithout(productID int64) []models.CartItem {

	items := make([]models.CartItem, 0, len(s.cart.Items))

	for _, item := range s.cart.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}

	return items
}

func (s *cartService) snapshot() *models.Cart {
	out := s.cart
	out.Items = make([]models.CartItem, len(s.cart.Items))
	copy(out.Items, s.cart.Items)

	return &out
}
