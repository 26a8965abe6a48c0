package wire

import (
	"net/http"

	"clothing-shop/internal/adaptor"
	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	auth func(http.Handler) http.Handler,
) {
	// Login is the only public route in the whole API.
	r.Post("/auth/login", authHandler.Login)

	manage := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente)

	r.With(auth, manage).Post("/auth/register", authHandler.Register)
	r.With(auth, manage).Put("/auth/register/{id}", authHandler.ChangeUserType)
	r.With(auth).Post("/auth/refresh-token", authHandler.RefreshToken)
}
