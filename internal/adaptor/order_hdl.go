package adaptor

import (
	"encoding/json"
	"net/http"
	"time"

	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.OrderCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create order")
		return
	}

	if staffID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		staffEmail, _ := utils.GetEmailFromContext(r.Context())
		h.log.Info("Order placed by staff",
			zap.String("order_id", order.OrderID),
			zap.String("staff_id", staffID.String()),
			zap.String("staff_email", staffEmail))
	}

	utils.ResponseCreated(w, order)
}

// List handles GET /orders with period/section/status/client/id filters
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.OrderFilter{
		Section: q.Get("section"),
		Status:  q.Get("status"),
	}

	if raw := q.Get("period"); raw != "" {
		period, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Período inválido. Use o formato AAAA-MM-DD.")
			return
		}
		filter.Period = &period
	}

	if raw := q.Get("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Identificador de cliente inválido.")
			return
		}
		filter.ClientID = &clientID
	}

	if raw := q.Get("order_id"); raw != "" {
		orderID, err := uuid.Parse(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Identificador de pedido inválido.")
			return
		}
		filter.OrderID = &orderID
	}

	page := request.PaginationFromQuery(q)

	orders, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		respondServiceError(w, h.log, err, "list orders")
		return
	}

	utils.ResponseSuccess(w, orders)
}

// GetByID handles GET /orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	order, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get order")
		return
	}

	utils.ResponseSuccess(w, order)
}

// UpdateStatus handles PUT /orders/{id}
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.OrderUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update order status")
		return
	}

	utils.ResponseSuccess(w, order)
}

// Delete handles DELETE /orders/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete order")
		return
	}

	utils.ResponseDeleted(w)
}
