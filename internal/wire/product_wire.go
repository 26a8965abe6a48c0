package wire

import (
	"net/http"

	"clothing-shop/internal/adaptor"
	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	auth func(http.Handler) http.Handler,
) {
	write := middleware.RequireRoles(entity.RoleAdministrador, entity.RoleGerente, entity.RoleEstoquista)

	r.With(auth).Get("/products", productHandler.List)
	r.With(auth).Get("/products/{id}", productHandler.GetByID)
	r.With(auth, write).Post("/products", productHandler.Create)
	r.With(auth, write).Put("/products/{id}", productHandler.Update)
	r.With(auth, write).Delete("/products/{id}", productHandler.Delete)

	r.With(auth, write).Post("/products/{id}/upload-image", productHandler.UploadImage)
	r.With(auth, write).Put("/products/{id}/update-images", productHandler.UpdateImages)
	r.With(auth, write).Delete("/products/{id}/delete-image", productHandler.DeleteImage)
}
