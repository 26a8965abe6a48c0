package wire

import (
	"net/http"

	"clothing-shop/internal/adaptor"
	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireClient(
	r chi.Router,
	clientHandler *adaptor.ClientHandler,
	auth func(http.Handler) http.Handler,
) {
	write := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente, entity.RoleVendedor)
	remove := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente)

	r.With(auth).Get("/clients", clientHandler.List)
	r.With(auth).Get("/clients/{id}", clientHandler.GetByID)
	r.With(auth, write).Post("/clients", clientHandler.Create)
	r.With(auth, write).Put("/clients/{id}", clientHandler.Update)
	r.With(auth, remove).Delete("/clients/{id}", clientHandler.Delete)
}
