package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, token)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, user)
}

// ChangeUserType handles PUT /auth/register/{id}
func (h *AuthHandler) ChangeUserType(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.ChangeUserTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	user, err := h.service.ChangeUserType(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "change user type")
		return
	}

	utils.ResponseSuccess(w, user)
}

// RefreshToken handles POST /auth/refresh-token. The route sits behind
// authentication, so the header is present and already validated; the
// service re-validates before re-issuing anyway.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		utils.ResponseUnauthorized(w, "Token de autenticação não fornecido.")
		return
	}

	token, err := h.service.RefreshToken(r.Context(), parts[1])
	if err != nil {
		respondServiceError(w, h.log, err, "refresh token")
		return
	}

	utils.ResponseSuccess(w, token)
}
