package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"go.uber.org/zap"
)

// maxUploadSize caps product image uploads at 10 MB.
const maxUploadSize = 10 << 20

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ProductCreateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, product)
}

// List handles GET /products with category/price/availability filters
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.ProductFilter{
		Category: q.Get("category"),
	}

	if raw := q.Get("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "Preço inválido.")
			return
		}
		filter.Price = &price
	}

	if raw := q.Get("availability"); raw != "" {
		availability, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Disponibilidade inválida.")
			return
		}
		filter.Availability = &availability
	}

	page := request.PaginationFromQuery(q)

	products, err := h.service.List(r.Context(), filter, page)
	if err != nil {
		respondServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, products)
}

// GetByID handles GET /products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// Update handles PUT /products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// Delete handles DELETE /products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseDeleted(w)
}

// UploadImage handles POST /products/{id}/upload-image. Expects a
// multipart form with the file in the "image" field.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.ResponseBadRequest(w, "Arquivo de imagem inválido.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.ResponseBadRequest(w, "Arquivo de imagem inválido.")
		return
	}
	defer file.Close()

	product, err := h.service.UploadImage(r.Context(), id, header.Filename, file)
	if err != nil {
		respondServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, product)
}

// UpdateImages handles PUT /products/{id}/update-images
func (h *ProductHandler) UpdateImages(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.UpdateImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	product, err := h.service.UpdateImages(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update images")
		return
	}

	utils.ResponseSuccess(w, product)
}

// DeleteImage handles DELETE /products/{id}/delete-image
func (h *ProductHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r)
	if !ok {
		utils.ResponseBadRequest(w, "Identificador inválido.")
		return
	}

	var req request.DeleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Corpo da requisição inválido.")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, validationErrors)
		return
	}

	product, err := h.service.DeleteImage(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "delete image")
		return
	}

	utils.ResponseSuccess(w, product)
}
