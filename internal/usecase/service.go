package usecase

import (
	"clothing-shop/internal/data/repository"
	"clothing-shop/pkg/rabbitmq"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Client  ClientService
	Product ProductService
	Order   OrderService
}

// NewService wires every business service. The AMQP publisher may be
// nil; order placement then skips event publishing.
func NewService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
	events *rabbitmq.Publisher,
) *Service {
	jwts := utils.NewJWTManager(config.JWT)

	return &Service{
		Auth:    NewAuthService(repo, jwts, log),
		Client:  NewClientService(repo, log),
		Product: NewProductService(repo, config, log),
		Order:   NewOrderService(repo, events, log),
	}
}
