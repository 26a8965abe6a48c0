package adaptor

import (
	"errors"
	"net/http"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Client  *ClientHandler
	Product *ProductHandler
	Order   *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Client:  NewClientHandler(service.Client, log),
		Product: NewProductHandler(service.Product, log),
		Order:   NewOrderHandler(service.Order, log),
	}
}

// respondServiceError maps service errors onto the HTTP contract:
// not-found sentinels → 404, duplicates / enum violations / stock and
// transition failures → 400, credential errors → 401, anything else a
// generic 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var enumErr *entity.EnumError
	var stockErr *entity.OutOfStockError
	var transitionErr *entity.TransitionError

	switch {
	case errors.As(err, &enumErr):
		log.Warn(operation+" failed - invalid value", zap.Error(err))
		utils.ResponseBadRequest(w, enumErr)

	case errors.As(err, &stockErr):
		log.Warn(operation+" failed - out of stock", zap.Error(err))
		utils.ResponseBadRequest(w, stockErr.Error())

	case errors.As(err, &transitionErr):
		log.Warn(operation+" failed - invalid transition", zap.Error(err))
		utils.ResponseBadRequest(w, transitionErr.Error())

	case errors.Is(err, entity.ErrDuplicateUserEmail),
		errors.Is(err, entity.ErrDuplicateClientEmail),
		errors.Is(err, entity.ErrDuplicateClientCPF):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())

	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, utils.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, entity.ErrUserNotFound),
		errors.Is(err, entity.ErrClientNotFound),
		errors.Is(err, entity.ErrProductNotFound),
		errors.Is(err, entity.ErrOrderNotFound),
		errors.Is(err, entity.ErrImageNotFound),
		errors.Is(err, entity.ErrOrderClientUnknown),
		errors.Is(err, entity.ErrOrderProductsMissing):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Erro interno do servidor.")
	}
}

// parseIDParam reads the {id} chi route parameter as a uuid.
func parseIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
