package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/dto/response"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	Create(ctx context.Context, req *request.ProductCreateRequest) (*response.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error)
	List(ctx context.Context, filter repository.ProductFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	Update(ctx context.Context, id uuid.UUID, req *request.ProductUpdateRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UploadImage(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (*response.ProductResponse, error)
	UpdateImages(ctx context.Context, id uuid.UUID, req *request.UpdateImagesRequest) (*response.ProductResponse, error)
	DeleteImage(ctx context.Context, id uuid.UUID, req *request.DeleteImageRequest) (*response.ProductResponse, error)
}

type productService struct {
	repo      *repository.Repository
	uploadDir string
	log       *zap.Logger
}

func NewProductService(repo *repository.Repository, config *utils.Config, log *zap.Logger) ProductService {
	return &productService{
		repo:      repo,
		uploadDir: config.Storage.UploadDir,
		log:       log,
	}
}

// normalizeEnum lowercases and trims before checking against a closed
// set, so "Masculino" and "masculino" are the same category.
func normalizeEnum(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func validateCategory(value string) (string, error) {
	v := normalizeEnum(value)
	if !entity.IsValidCategory(v) {
		return "", entity.NewEnumError(fmt.Sprintf("Categoria '%s' inválida.", value), entity.ValidCategoryTypes)
	}
	return v, nil
}

func validateSection(value string) (string, error) {
	v := normalizeEnum(value)
	if !entity.IsValidSection(v) {
		return "", entity.NewEnumError(fmt.Sprintf("Seção '%s' inválida.", value), entity.ValidSectionTypes)
	}
	return v, nil
}

func validateSizes(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, value := range values {
		v := normalizeEnum(value)
		if !entity.IsValidSize(v) {
			return nil, entity.NewEnumError(fmt.Sprintf("Tamanho '%s' inválido.", value), entity.ValidSizeTypes)
		}
		out = append(out, v)
	}
	return out, nil
}

func validateColors(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, value := range values {
		v := normalizeEnum(value)
		if !entity.IsValidColor(v) {
			return nil, entity.NewEnumError(fmt.Sprintf("Cor '%s' inválida.", value), entity.ValidColorTypes)
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *productService) Create(ctx context.Context, req *request.ProductCreateRequest) (*response.ProductResponse, error) {
	category, err := validateCategory(req.ProdCat)
	if err != nil {
		return nil, err
	}
	section, err := validateSection(req.ProdSection)
	if err != nil {
		return nil, err
	}
	sizes, err := validateSizes(req.ProdSize)
	if err != nil {
		return nil, err
	}
	colors, err := validateColors(req.ProdColor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.ProdName,
		Description:  req.ProdDesc,
		Price:        req.ProdPrice,
		Category:     category,
		Section:      section,
		Barcode:      req.ProdBarcode,
		Sizes:        sizes,
		Colors:       colors,
		Images:       req.ProdImgs,
		ExpiryDate:   req.ProdDtval,
		InitialStock: req.ProdInitialstock,
		Stock:        req.ProdInitialstock,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.ProdName))
		return nil, err
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.Int("stock", product.Stock))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	products, err := s.repo.Product.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, response.ProductToResponse(product))
	}

	return response.NewPaginatedResponse(data, page.Page, page.Limit(), total), nil
}

// Update applies only the fields present in the request. Stock never
// changes here, only order placement moves it.
func (s *productService) Update(ctx context.Context, id uuid.UUID, req *request.ProductUpdateRequest) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	if req.ProdCat != nil {
		category, err := validateCategory(*req.ProdCat)
		if err != nil {
			return nil, err
		}
		product.Category = category
	}
	if req.ProdSection != nil {
		section, err := validateSection(*req.ProdSection)
		if err != nil {
			return nil, err
		}
		product.Section = section
	}
	if req.ProdSize != nil {
		sizes, err := validateSizes(*req.ProdSize)
		if err != nil {
			return nil, err
		}
		product.Sizes = sizes
	}
	if req.ProdColor != nil {
		colors, err := validateColors(*req.ProdColor)
		if err != nil {
			return nil, err
		}
		product.Colors = colors
	}

	if req.ProdName != nil {
		product.Name = *req.ProdName
	}
	if req.ProdDesc != nil {
		product.Description = *req.ProdDesc
	}
	if req.ProdPrice != nil {
		product.Price = *req.ProdPrice
	}
	if req.ProdImgs != nil {
		product.Images = *req.ProdImgs
	}
	if req.ProdDtval != nil {
		product.ExpiryDate = req.ProdDtval
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id.String()))
		return nil, err
	}

	s.log.Info("Product updated", zap.String("product_id", product.ID.String()))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return entity.ErrProductNotFound
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id.String()))
		return err
	}

	return nil
}

// UploadImage stores the file under the upload directory with a fresh
// uuid name and appends the reference to the product image list.
func (s *productService) UploadImage(ctx context.Context, id uuid.UUID, filename string, file io.Reader) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		s.log.Error("Failed to create upload directory", zap.Error(err), zap.String("dir", s.uploadDir))
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(filename)
	path := filepath.Join(s.uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		s.log.Error("Failed to create image file", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		s.log.Error("Failed to write image file", zap.Error(err), zap.String("path", path))
		return nil, fmt.Errorf("write image file: %w", err)
	}

	product.Images = append(product.Images, name)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		os.Remove(path)
		s.log.Error("Failed to attach image", zap.Error(err), zap.String("product_id", id.String()))
		return nil, err
	}

	s.log.Info("Image uploaded",
		zap.String("product_id", product.ID.String()),
		zap.String("image", name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

// UpdateImages replaces the whole ordered image list.
func (s *productService) UpdateImages(ctx context.Context, id uuid.UUID, req *request.UpdateImagesRequest) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	product.Images = req.ProdImgs
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update images", zap.Error(err), zap.String("product_id", id.String()))
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) DeleteImage(ctx context.Context, id uuid.UUID, req *request.DeleteImageRequest) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, entity.ErrProductNotFound
	}

	idx := slices.Index(product.Images, req.Image)
	if idx < 0 {
		return nil, entity.ErrImageNotFound
	}

	product.Images = slices.Delete(product.Images, idx, idx+1)
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to detach image", zap.Error(err), zap.String("product_id", id.String()))
		return nil, err
	}

	// Removing the file is best effort, the reference is already gone.
	if err := os.Remove(filepath.Join(s.uploadDir, req.Image)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove image file",
			zap.Error(err),
			zap.String("image", req.Image))
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}
