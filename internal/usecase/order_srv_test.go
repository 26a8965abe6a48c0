package usecase_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"clothing-shop/internal/data/entity"
	"clothing-shop/internal/data/repository"
	"clothing-shop/internal/dto/request"
	"clothing-shop/internal/usecase"
	"clothing-shop/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *usecase.Service {
	t.Helper()

	products := repository.NewMockProductRepository()
	repo := &repository.Repository{
		User:    repository.NewMockUserRepository(),
		Client:  repository.NewMockClientRepository(),
		Product: products,
		Order:   repository.NewMockOrderRepository(products),
	}

	config := &utils.Config{
		JWT:     utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30},
		Storage: utils.StorageConfig{UploadDir: t.TempDir()},
	}

	return usecase.NewService(repo, config, zap.NewNop(), nil)
}

var clientSeq atomic.Int64

func seedClient(t *testing.T, svc *usecase.Service) uuid.UUID {
	t.Helper()

	seq := clientSeq.Add(1)
	client, err := svc.Client.Create(context.Background(), &request.ClientCreateRequest{
		CliName:    "Maria da Silva",
		CliEmail:   fmt.Sprintf("maria%d@example.com", seq),
		CliCPF:     fmt.Sprintf("%011d", seq),
		CliPhone:   "11987654321",
		CliAddress: "Rua das Flores, 100",
	})
	require.NoError(t, err)

	return uuid.MustParse(client.CliID)
}

func seedProduct(t *testing.T, svc *usecase.Service, stock int) uuid.UUID {
	t.Helper()

	product, err := svc.Product.Create(context.Background(), &request.ProductCreateRequest{
		ProdName:         "Camiseta Básica",
		ProdDesc:         "Camiseta de algodão",
		ProdPrice:        49.9,
		ProdCat:          "masculino",
		ProdSection:      "blusas",
		ProdBarcode:      "7891234567890",
		ProdSize:         []string{"m", "g"},
		ProdColor:        []string{"preto"},
		ProdInitialstock: stock,
	})
	require.NoError(t, err)

	return uuid.MustParse(product.ProdID)
}

func productStock(t *testing.T, svc *usecase.Service, id uuid.UUID) int {
	t.Helper()

	product, err := svc.Product.GetByID(context.Background(), id)
	require.NoError(t, err)
	return product.ProdStock
}

func TestOrderCreate_DecrementsStockPerOccurrence(t *testing.T) {
	svc := newTestService(t)
	clientID := seedClient(t, svc)
	productID := seedProduct(t, svc, 5)

	order, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     clientID.String(),
		OrderProds:   []string{productID.String(), productID.String()},
		OrderTotal:   99.8,
		OrderTypepay: "pix",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})

	require.NoError(t, err)
	assert.Equal(t, "em andamento", order.OrderStatus)
	assert.Len(t, order.OrderProds, 2)
	assert.Equal(t, 3, productStock(t, svc, productID))
}

func TestOrderCreate_UnknownClient(t *testing.T) {
	svc := newTestService(t)
	productID := seedProduct(t, svc, 5)

	_, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     uuid.New().String(),
		OrderProds:   []string{productID.String()},
		OrderTotal:   49.9,
		OrderTypepay: "pix",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})

	assert.ErrorIs(t, err, entity.ErrOrderClientUnknown)
	assert.Equal(t, 5, productStock(t, svc, productID))
}

func TestOrderCreate_MissingProduct(t *testing.T) {
	svc := newTestService(t)
	clientID := seedClient(t, svc)
	productID := seedProduct(t, svc, 5)

	_, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     clientID.String(),
		OrderProds:   []string{productID.String(), uuid.New().String()},
		OrderTotal:   99.8,
		OrderTypepay: "pix",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})

	assert.ErrorIs(t, err, entity.ErrOrderProductsMissing)
	assert.Equal(t, 5, productStock(t, svc, productID))
}

func TestOrderCreate_OutOfStockRollsBackEverything(t *testing.T) {
	svc := newTestService(t)
	clientID := seedClient(t, svc)
	plenty := seedProduct(t, svc, 5)
	scarce := seedProduct(t, svc, 1)

	_, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     clientID.String(),
		OrderProds:   []string{plenty.String(), scarce.String(), scarce.String()},
		OrderTotal:   149.7,
		OrderTypepay: "crédito",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})

	var stockErr *entity.OutOfStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Contains(t, stockErr.Error(), "está sem estoque")

	// Nothing moved, not even for the product that had stock.
	assert.Equal(t, 5, productStock(t, svc, plenty))
	assert.Equal(t, 1, productStock(t, svc, scarce))
}

func TestOrderCreate_InvalidPaymentType(t *testing.T) {
	svc := newTestService(t)
	clientID := seedClient(t, svc)
	productID := seedProduct(t, svc, 5)

	_, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     clientID.String(),
		OrderProds:   []string{productID.String()},
		OrderTotal:   49.9,
		OrderTypepay: "cheque",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})

	var enumErr *entity.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, entity.ValidPaymentTypes, enumErr.ValidTypes)
}

func placeOrder(t *testing.T, svc *usecase.Service) uuid.UUID {
	t.Helper()

	clientID := seedClient(t, svc)
	productID := seedProduct(t, svc, 5)

	order, err := svc.Order.Create(context.Background(), &request.OrderCreateRequest{
		OrderCli:     clientID.String(),
		OrderProds:   []string{productID.String()},
		OrderTotal:   49.9,
		OrderTypepay: "pix",
		OrderAddress: "Rua das Flores, 100",
		OrderSection: "blusas",
	})
	require.NoError(t, err)

	return uuid.MustParse(order.OrderID)
}

func TestOrderUpdateStatus_FollowsLifecycle(t *testing.T) {
	svc := newTestService(t)
	orderID := placeOrder(t, svc)

	order, err := svc.Order.UpdateStatus(context.Background(), orderID, &request.OrderUpdateRequest{
		OrderStatus: "pagamento confirmado",
	})
	require.NoError(t, err)
	assert.Equal(t, "pagamento confirmado", order.OrderStatus)
}

func TestOrderUpdateStatus_RejectsForbiddenTransition(t *testing.T) {
	svc := newTestService(t)
	orderID := placeOrder(t, svc)

	// "em andamento" cannot jump straight to "entregue".
	_, err := svc.Order.UpdateStatus(context.Background(), orderID, &request.OrderUpdateRequest{
		OrderStatus: "entregue",
	})

	var transitionErr *entity.TransitionError
	require.ErrorAs(t, err, &transitionErr)

	order, err := svc.Order.GetByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, "em andamento", order.OrderStatus)
}

func TestOrderUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)
	orderID := placeOrder(t, svc)

	_, err := svc.Order.UpdateStatus(context.Background(), orderID, &request.OrderUpdateRequest{
		OrderStatus: "enviado",
	})

	var enumErr *entity.EnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, entity.ValidStatusTypes, enumErr.ValidTypes)
}

func TestOrderList_FiltersByStatus(t *testing.T) {
	svc := newTestService(t)
	orderID := placeOrder(t, svc)
	placeOrder(t, svc)

	_, err := svc.Order.UpdateStatus(context.Background(), orderID, &request.OrderUpdateRequest{
		OrderStatus: "pagamento confirmado",
	})
	require.NoError(t, err)

	page := request.PaginatedRequest{Page: 1, PerPage: 10}

	confirmed, err := svc.Order.List(context.Background(), repository.OrderFilter{Status: "pagamento confirmado"}, page)
	require.NoError(t, err)
	require.Len(t, confirmed.Data, 1)
	assert.Equal(t, orderID.String(), confirmed.Data[0].OrderID)

	all, err := svc.Order.List(context.Background(), repository.OrderFilter{}, page)
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)
	assert.Equal(t, int64(2), all.Pagination.Total)
}

func TestOrderDelete_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.Order.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)
}
