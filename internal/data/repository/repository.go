package repository

import (
	"clothing-shop/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Client  ClientRepository
	Product ProductRepository
	Order   OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Client:  NewClientRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
	}
}
