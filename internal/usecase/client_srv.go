package usecase

import (
	"context"
	"strings"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClientService interface {
	Create(ctx context.Context, req *request.ClientCreateRequest) (*response.ClientResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ClientResponse, error)
	List(ctx context.Context, filter repository.ClientFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ClientResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.ClientUpdateRequest) (*response.ClientResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewClientService(repo *repository.Repository, log *zap.Logger) ClientService {
	return &clientService{
		repo: repo,
		log:  log,
	}
}

// digitsOnly strips everything but 0-9, so "123.456.789-00" and
// "12345678900" are the same CPF.
func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (s *clientService) Create(ctx context.Context, req *request.ClientCreateRequest) (*response.ClientResponse, error) {
	cpf := digitsOnly(req.CliCPF)
	phone := digitsOnly(req.CliPhone)

	existing, err := s.repo.Client.FindByEmail(ctx, req.CliEmail)
	if err != nil {
		s.log.Error("Failed to check client email", zap.Error(err), zap.String("email", req.CliEmail))
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateClientEmail
	}

	existing, err = s.repo.Client.FindByCPF(ctx, cpf)
	if err != nil {
		s.log.Error("Failed to check client CPF", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateClientCPF
	}

	client := &entity.Client{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:     req.CliName,
		Email:    req.CliEmail,
		CPF:      cpf,
		Phone:    phone,
		Address:  req.CliAddress,
		IsActive: true,
	}

	if err := s.repo.Client.Create(ctx, client); err != nil {
		s.log.Error("Failed to create client", zap.Error(err), zap.String("email", req.CliEmail))
		return nil, err
	}

	s.log.Info("Client created", zap.String("client_id", client.ID.String()))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*response.ClientResponse, error) {
	client, err := s.repo.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, entity.ErrClientNotFound
	}

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) List(ctx context.Context, filter repository.ClientFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ClientResponse], error) {
	clients, err := s.repo.Client.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Client.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]response.ClientResponse, 0, len(clients))
	for _, client := range clients {
		data = append(data, response.ClientToResponse(client))
	}

	return response.NewPaginatedResponse(data, page.Page, page.Limit(), total), nil
}

// Update applies only the fields present in the request. CPF is
// immutable after creation.
func (s *clientService) Update(ctx context.Context, id uuid.UUID, req *request.ClientUpdateRequest) (*response.ClientResponse, error) {
	client, err := s.repo.Client.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, entity.ErrClientNotFound
	}

	if req.CliEmail != nil && *req.CliEmail != client.Email {
		existing, err := s.repo.Client.FindByEmail(ctx, *req.CliEmail)
		if err != nil {
			s.log.Error("Failed to check client email", zap.Error(err), zap.String("email", *req.CliEmail))
			return nil, err
		}
		if existing != nil {
			return nil, entity.ErrDuplicateClientEmail
		}
		client.Email = *req.CliEmail
	}

	if req.CliName != nil {
		client.Name = *req.CliName
	}
	if req.CliPhone != nil {
		client.Phone = digitsOnly(*req.CliPhone)
	}
	if req.CliAddress != nil {
		client.Address = *req.CliAddress
	}

	if err := s.repo.Client.Update(ctx, client); err != nil {
		s.log.Error("Failed to update client", zap.Error(err), zap.String("client_id", id.String()))
		return nil, err
	}

	s.log.Info("Client updated", zap.String("client_id", client.ID.String()))

	resp := response.ClientToResponse(client)
	return &resp, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
	client, err := s.repo.Client.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return entity.ErrClientNotFound
	}

	if err := s.repo.Client.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete client", zap.Error(err), zap.String("client_id", id.String()))
		return err
	}

	return nil
}
