package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"clothing-shop/internal/data/entity"

	"github.com/google/uuid"
)

// MockClientRepository is an in-memory implementation of ClientRepository.
type MockClientRepository struct {
	clients map[uuid.UUID]entity.Client
	mu      sync.RWMutex
}

// NewMockClientRepository creates a new instance of MockClientRepository.
func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{
		clients: make(map[uuid.UUID]entity.Client),
	}
}

func (r *MockClientRepository) Create(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *MockClientRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return &client, nil
}

func (r *MockClientRepository) FindByEmail(_ context.Context, email string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.Email == email {
			c := client
			return &c, nil
		}
	}
	return nil, nil
}

func (r *MockClientRepository) FindByCPF(_ context.Context, cpf string) (*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, client := range r.clients {
		if client.CPF == cpf {
			c := client
			return &c, nil
		}
	}
	return nil, nil
}

func matchesClientFilter(client entity.Client, filter ClientFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(client.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Email != "" && !strings.Contains(strings.ToLower(client.Email), strings.ToLower(filter.Email)) {
		return false
	}
	return true
}

func (r *MockClientRepository) FindAll(_ context.Context, filter ClientFilter, limit, offset int) ([]*entity.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]entity.Client, 0, len(r.clients))
	for _, client := range r.clients {
		if matchesClientFilter(client, filter) {
			all = append(all, client)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	var page []*entity.Client
	for i := offset; i < len(all) && len(page) < limit; i++ {
		c := all[i]
		page = append(page, &c)
	}
	return page, nil
}

func (r *MockClientRepository) Count(_ context.Context, filter ClientFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, client := range r.clients {
		if matchesClientFilter(client, filter) {
			count++
		}
	}
	return count, nil
}

func (r *MockClientRepository) Update(_ context.Context, client *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[client.ID]; !ok {
		return fmt.Errorf("client %s not found", client.ID.String())
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *MockClientRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.clients[id]; !ok {
		return fmt.Errorf("client %s not found", id.String())
	}
	delete(r.clients, id)
	return nil
}
