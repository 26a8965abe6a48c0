package usecase_test

import (
	"context"
	"strings"
	"testing"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate_StockStartsAtInitialStock(t *testing.T) {
	svc := newTestService(t)

	product, err := svc.Product.Create(context.Background(), &request.ProductCreateRequest{
		ProdName:         "Vestido Floral",
		ProdPrice:        129.9,
		ProdCat:          "Feminino",
		ProdSection:      "Vestidos",
		ProdBarcode:      "7891234567890",
		ProdSize:         []string{"P", "M"},
		ProdColor:        []string{"Rosa"},
		ProdInitialstock: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, 12, product.ProdInitialstock)
	assert.Equal(t, 12, product.ProdStock)

	// Enum inputs are normalized to lowercase.
	assert.Equal(t, "feminino", product.ProdCat)
	assert.Equal(t, "vestidos", product.ProdSection)
	assert.Equal(t, []string{"p", "m"}, product.ProdSize)
	assert.Equal(t, []string{"rosa"}, product.ProdColor)
}

func TestProductCreate_RejectsUnknownSize(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Product.Create(context.Background(), &request.ProductCreateRequest{
		ProdName:         "Vestido Floral",
		ProdPrice:        129.9,
		ProdCat:          "feminino",
		ProdSection:      "vestidos",
		ProdBarcode:      "7891234567890",
		ProdSize:         []string{"xgg"},
		ProdInitialstock: 12,
	})

	var enumErr *entity.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Contains(t, enumErr.Msg, "xgg")
	assert.Equal(t, entity.ValidSizeTypes, enumErr.ValidTypes)
}

func TestProductCreate_RejectsUnknownCategory(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Product.Create(context.Background(), &request.ProductCreateRequest{
		ProdName:         "Vestido Floral",
		ProdPrice:        129.9,
		ProdCat:          "infantil",
		ProdSection:      "vestidos",
		ProdBarcode:      "7891234567890",
		ProdInitialstock: 12,
	})

	var enumErr *entity.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, entity.ValidCategoryTypes, enumErr.ValidTypes)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	svc := newTestService(t)
	productID := seedProduct(t, svc, 5)

	newPrice := 59.9
	updated, err := svc.Product.Update(context.Background(), productID, &request.ProductUpdateRequest{
		ProdPrice: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 59.9, updated.ProdPrice)
	assert.Equal(t, "Camiseta Básica", updated.ProdName)
	assert.Equal(t, 5, updated.ProdStock)
}

func TestProductList_AvailabilityFilter(t *testing.T) {
	svc := newTestService(t)
	inStock := seedProduct(t, svc, 5)
	soldOut := seedProduct(t, svc, 0)

	page := request.PaginatedRequest{Page: 1, PerPage: 10}
	yes, no := true, false

	available, err := svc.Product.List(context.Background(), repository.ProductFilter{Availability: &yes}, page)
	require.NoError(t, err)
	require.Len(t, available.Data, 1)
	assert.Equal(t, inStock.String(), available.Data[0].ProdID)

	unavailable, err := svc.Product.List(context.Background(), repository.ProductFilter{Availability: &no}, page)
	require.NoError(t, err)
	require.Len(t, unavailable.Data, 1)
	assert.Equal(t, soldOut.String(), unavailable.Data[0].ProdID)
}

func TestProductUploadImage_AppendsReference(t *testing.T) {
	svc := newTestService(t)
	productID := seedProduct(t, svc, 5)

	product, err := svc.Product.UploadImage(context.Background(), productID, "foto.png", strings.NewReader("fake png bytes"))

	require.NoError(t, err)
	require.Len(t, product.ProdImgs, 1)
	assert.True(t, strings.HasSuffix(product.ProdImgs[0], ".png"))
}

func TestProductDeleteImage_UnknownReference(t *testing.T) {
	svc := newTestService(t)
	productID := seedProduct(t, svc, 5)

	_, err := svc.Product.DeleteImage(context.Background(), productID, &request.DeleteImageRequest{
		Image: "nao-existe.png",
	})

	assert.ErrorIs(t, err, entity.ErrImageNotFound)
}

func TestProductDeleteImage_RemovesReference(t *testing.T) {
	svc := newTestService(t)
	productID := seedProduct(t, svc, 5)

	uploaded, err := svc.Product.UploadImage(context.Background(), productID, "foto.png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)

	product, err := svc.Product.DeleteImage(context.Background(), productID, &request.DeleteImageRequest{
		Image: uploaded.ProdImgs[0],
	})

	require.NoError(t, err)
	assert.Empty(t, product.ProdImgs)
}

func TestProductDelete_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Product.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}
