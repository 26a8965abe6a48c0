package wire

import (
	"net/http"

	"clothing-shop/internal/adaptor"
	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	auth func(http.Handler) http.Handler,
) {
	place := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor, entity.RoleAtendente)
	manage := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente)

	r.With(auth).Get("/orders", orderHandler.List)
	r.With(auth).Get("/orders/{id}", orderHandler.GetByID)
	r.With(auth, place).Post("/orders", orderHandler.Create)
	r.With(auth, manage).Put("/orders/{id}", orderHandler.UpdateStatus)
	r.With(auth, manage).Delete("/orders/{id}", orderHandler.Delete)
}
