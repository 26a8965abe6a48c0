package usecase

import (
	"context"
	"fmt"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/dto/response"
	"clothing-shop/pkg/rabbitmq"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	Create(ctx context.Context, req *request.OrderCreateRequest) (*response.OrderResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error)
	List(ctx context.Context, filter repository.OrderFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.OrderUpdateRequest) (*response.OrderResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo   *repository.Repository
	events *rabbitmq.Publisher
	log    *zap.Logger
}

func NewOrderService(repo *repository.Repository, events *rabbitmq.Publisher, log *zap.Logger) OrderService {
	return &orderService{
		repo:   repo,
		events: events,
		log:    log,
	}
}

// Create places an order. The client and every referenced product must
// exist; stock is decremented one unit per occurrence inside a single
// transaction, so a sold-out product aborts the whole order.
func (s *orderService) Create(ctx context.Context, req *request.OrderCreateRequest) (*response.OrderResponse, error) {
	typepay := normalizeEnum(req.OrderTypepay)
	if !entity.IsValidPaymentType(typepay) {
		return nil, entity.NewEnumError(fmt.Sprintf("Tipo de pagamento '%s' inválido.", req.OrderTypepay), entity.ValidPaymentTypes)
	}

	section, err := validateSection(req.OrderSection)
	if err != nil {
		return nil, err
	}

	clientID, err := uuid.Parse(req.OrderCli)
	if err != nil {
		return nil, entity.ErrOrderClientUnknown
	}

	client, err := s.repo.Client.FindByID(ctx, clientID)
	if err != nil {
		s.log.Error("Failed to check order client", zap.Error(err), zap.String("client_id", clientID.String()))
		return nil, err
	}
	if client == nil {
		return nil, entity.ErrOrderClientUnknown
	}

	productIDs := make([]uuid.UUID, 0, len(req.OrderProds))
	distinct := make(map[uuid.UUID]bool)
	for _, raw := range req.OrderProds {
		productID, err := uuid.Parse(raw)
		if err != nil {
			return nil, entity.ErrOrderProductsMissing
		}
		productIDs = append(productIDs, productID)
		distinct[productID] = true
	}

	products, err := s.repo.Product.FindByIDs(ctx, productIDs)
	if err != nil {
		s.log.Error("Failed to check order products", zap.Error(err))
		return nil, err
	}
	if len(products) != len(distinct) {
		return nil, entity.ErrOrderProductsMissing
	}

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ClientID:    clientID,
		ProductIDs:  productIDs,
		Total:       req.OrderTotal,
		PaymentType: entity.PaymentType(typepay),
		Address:     req.OrderAddress,
		Section:     section,
		Status:      entity.StatusEmAndamento,
		Period:      now,
	}

	if err := s.repo.Order.PlaceOrder(ctx, order); err != nil {
		s.log.Warn("Order placement failed",
			zap.Error(err),
			zap.String("client_id", clientID.String()))
		return nil, err
	}

	s.log.Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("client_id", clientID.String()),
		zap.Int("items", len(productIDs)),
		zap.Float64("total", order.Total))

	s.publishOrderCreated(order)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// publishOrderCreated announces the order to downstream consumers. A
// broker failure is logged and never fails the placed order.
func (s *orderService) publishOrderCreated(order *entity.Order) {
	if s.events == nil {
		return
	}

	err := s.events.PublishOrderCreated(map[string]interface{}{
		"event":         "order.created",
		"order_id":      order.ID.String(),
		"order_cli":     order.ClientID.String(),
		"order_total":   order.Total,
		"order_typepay": string(order.PaymentType),
		"order_status":  string(order.Status),
	})
	if err != nil {
		s.log.Warn("Failed to publish order event",
			zap.Error(err),
			zap.String("order_id", order.ID.String()))
	}
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.ErrOrderNotFound
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) List(ctx context.Context, filter repository.OrderFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	orders, err := s.repo.Order.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Order.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		data = append(data, response.OrderToResponse(order))
	}

	return response.NewPaginatedResponse(data, page.Page, page.Limit(), total), nil
}

// UpdateStatus validates the value against the closed set and the move
// against the lifecycle graph before persisting.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.OrderUpdateRequest) (*response.OrderResponse, error) {
	status := normalizeEnum(req.OrderStatus)
	if !entity.IsValidStatus(status) {
		return nil, entity.NewEnumError(fmt.Sprintf("Status '%s' inválido.", req.OrderStatus), entity.ValidStatusTypes)
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, entity.ErrOrderNotFound
	}

	next := entity.OrderStatus(status)
	if !order.Status.CanTransitionTo(next) {
		return nil, &entity.TransitionError{From: order.Status, To: next}
	}

	if err := s.repo.Order.UpdateStatus(ctx, id, next); err != nil {
		s.log.Error("Failed to update order status", zap.Error(err), zap.String("order_id", id.String()))
		return nil, err
	}

	order.Status = next

	s.log.Info("Order status changed",
		zap.String("order_id", order.ID.String()),
		zap.String("status", status))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return entity.ErrOrderNotFound
	}

	if err := s.repo.Order.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete order", zap.Error(err), zap.String("order_id", id.String()))
		return err
	}

	return nil
}
