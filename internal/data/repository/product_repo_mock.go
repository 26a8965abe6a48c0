package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"clothing-shop/internal/data/entity"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uuid.UUID]entity.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uuid.UUID]entity.Product),
	}
}

func (r *MockProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	r.products[product.ID] = *product
	return nil
}

func (r *MockProductRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *MockProductRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[uuid.UUID]bool)
	var products []*entity.Product
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.products[id]; ok {
			p := product
			products = append(products, &p)
		}
	}
	return products, nil
}

func matchesProductFilter(product entity.Product, filter ProductFilter) bool {
	if filter.Category != "" && product.Category != filter.Category {
		return false
	}
	if filter.Price != nil && product.Price != *filter.Price {
		return false
	}
	if filter.Availability != nil {
		if *filter.Availability && product.Stock == 0 {
			return false
		}
		if !*filter.Availability && product.Stock > 0 {
			return false
		}
	}
	return true
}

func (r *MockProductRepository) FindAll(_ context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entity.Product, 0, len(r.products))
	for _, product := range r.products {
		if matchesProductFilter(product, filter) {
			all = append(all, product)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	var page []*entity.Product
	for i := offset; i < len(all) && len(page) < limit; i++ {
		p := all[i]
		page = append(page, &p)
	}
	return page, nil
}

func (r *MockProductRepository) Count(_ context.Context, filter ProductFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, product := range r.products {
		if matchesProductFilter(product, filter) {
			count++
		}
	}
	return count, nil
}

func (r *MockProductRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %s not found", product.ID.String())
	}
	r.products[product.ID] = *product
	return nil
}

func (r *MockProductRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s not found", id.String())
	}
	delete(r.products, id)
	return nil
}
