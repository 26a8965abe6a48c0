package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"clothing-shop/internal/data/entity"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It shares a MockProductRepository so PlaceOrder can decrement stock
// with the same all-or-nothing behavior as the real one.
type MockOrderRepository struct {
	orders   map[uuid.UUID]entity.Order
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		orders:   make(map[uuid.UUID]entity.Order),
		products: products,
	}
}

func (r *MockOrderRepository) PlaceOrder(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products.mu.Lock()
	defer r.products.mu.Unlock()

	// Verify every occurrence has stock before touching anything.
	needed := make(map[uuid.UUID]int)
	for _, id := range order.ProductIDs {
		needed[id]++
	}
	for id, qty := range needed {
		product, ok := r.products.products[id]
		if !ok {
			return fmt.Errorf("product %s not found", id.String())
		}
		if product.Stock < qty {
			return &entity.OutOfStockError{ProductName: product.Name}
		}
	}

	for id, qty := range needed {
		product := r.products.products[id]
		product.Stock -= qty
		r.products.products[id] = product
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *MockOrderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func matchesOrderFilter(order entity.Order, filter OrderFilter) bool {
	if filter.Period != nil {
		y1, m1, d1 := order.Period.Date()
		y2, m2, d2 := filter.Period.Date()
		if y1 != y2 || m1 != m2 || d1 != d2 {
			return false
		}
	}
	if filter.Section != "" && order.Section != filter.Section {
		return false
	}
	if filter.Status != "" && string(order.Status) != filter.Status {
		return false
	}
	if filter.ClientID != nil && order.ClientID != *filter.ClientID {
		return false
	}
	if filter.OrderID != nil && order.ID != *filter.OrderID {
		return false
	}
	return true
}

func (r *MockOrderRepository) FindAll(_ context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entity.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if matchesOrderFilter(order, filter) {
			all = append(all, order)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	var page []*entity.Order
	for i := offset; i < len(all) && len(page) < limit; i++ {
		o := all[i]
		page = append(page, &o)
	}
	return page, nil
}

func (r *MockOrderRepository) Count(_ context.Context, filter OrderFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, order := range r.orders {
		if matchesOrderFilter(order, filter) {
			count++
		}
	}
	return count, nil
}

func (r *MockOrderRepository) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order %s not found", id.String())
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

func (r *MockOrderRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("order %s not found", id.String())
	}
	delete(r.orders, id)
	return nil
}
