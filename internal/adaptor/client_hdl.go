package adaptor

import (
	"encoding/json"
	"net/http"

	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

type ClientHandler struct {
	service usecase.ClientService
	log     *zap.Logger
}

func NewClientHandler(service usecase.ClientService, log *zap.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /clients
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ClientCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create client")
		return
	}

	utils.ResponseCreated(w, client)
}

// List handles GET /clients with name/email substring filters
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ClientFilter{
		Name:  q.Get("name"),
		Email: q.Get("email"),
	}
	page := request.PaginationFromQuery(q)

	clients, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		respondServiceError(w, h.log, err, "list clients")
		return
	}

	utils.ResponseSuccess(w, clients)
}

// GetByID handles GET /clients/{id}
func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	client, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get client")
		return
	}

	utils.ResponseSuccess(w, client)
}

// Update handles PUT /clients/{id}
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.ClientUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	client, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update client")
		return
	}

	utils.ResponseSuccess(w, client)
}

// Delete handles DELETE /clients/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete client")
		return
	}

	utils.ResponseDeleted(w)
}
