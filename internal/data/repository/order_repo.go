package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// OrderFilter narrows order listings. Period matches the calendar date of
// order_period; ClientID and OrderID match exactly.
type OrderFilter struct {
	Period   *time.Time
	Section  string
	Status   string
	ClientID *uuid.UUID
	OrderID  *uuid.UUID
}

type OrderRepository interface {
	PlaceOrder(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error)
	Count(ctx context.Context, filter OrderFilter) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

const orderColumns = `id, order_cli, order_prods, order_total, order_typepay,
	       order_address, order_section, order_status, order_period, created_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	err := row.Scan(
		&order.ID,
		&order.ClientID,
		&order.ProductIDs,
		&order.Total,
		&order.PaymentType,
		&order.Address,
		&order.Section,
		&order.Status,
		&order.Period,
		&order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// PlaceOrder inserts the order and decrements stock for every product
// occurrence in one transaction. A product listed twice is decremented
// twice. If any decrement finds no stock the whole transaction rolls
// back and an OutOfStockError is returned.
func (or *orderRepository) PlaceOrder(ctx context.Context, order *entity.Order) error {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		or.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	decrement := `
		UPDATE products
		SET prod_stock = prod_stock - 1, updated_at = $2
		WHERE id = $1 AND prod_stock >= 1
	`

	now := time.Now()
	for _, productID := range order.ProductIDs {
		result, err := tx.Exec(ctx, decrement, productID, now)
		if err != nil {
			or.log.Error("Failed to decrement product stock",
				zap.Error(err),
				zap.String("product_id", productID.String()),
			)
			return fmt.Errorf("decrement stock for product %s: %w", productID.String(), err)
		}

		if result.RowsAffected() == 0 {
			var name string
			err := tx.QueryRow(ctx, `SELECT prod_name FROM products WHERE id = $1`, productID).Scan(&name)
			if err != nil {
				or.log.Error("Failed to resolve product name",
					zap.Error(err),
					zap.String("product_id", productID.String()),
				)
				return fmt.Errorf("resolve product name %s: %w", productID.String(), err)
			}
			return &entity.OutOfStockError{ProductName: name}
		}
	}

	insert := `
		INSERT INTO orders (id, order_cli, order_prods, order_total, order_typepay,
		                    order_address, order_section, order_status, order_period,
		                    created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, insert,
		order.ID,
		order.ClientID,
		order.ProductIDs,
		order.Total,
		order.PaymentType,
		order.Address,
		order.Section,
		order.Status,
		order.Period,
		order.CreatedAt,
	)

	if err != nil {
		or.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("client_id", order.ClientID.String()),
		)
		return fmt.Errorf("insert order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		or.log.Error("Failed to commit order transaction", zap.Error(err))
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(or.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func appendOrderFilter(queryBuilder *strings.Builder, filter OrderFilter, args []interface{}) ([]interface{}, int) {
	argCount := len(args) + 1

	if filter.Period != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND order_period::date = $%d::date", argCount))
		args = append(args, *filter.Period)
		argCount++
	}

	if filter.Section != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND order_section = $%d", argCount))
		args = append(args, filter.Section)
		argCount++
	}

	if filter.Status != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND order_status = $%d", argCount))
		args = append(args, filter.Status)
		argCount++
	}

	if filter.ClientID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND order_cli = $%d", argCount))
		args = append(args, *filter.ClientID)
		argCount++
	}

	if filter.OrderID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND id = $%d", argCount))
		args = append(args, *filter.OrderID)
		argCount++
	}

	return args, argCount
}

func (or *orderRepository) FindAll(ctx context.Context, filter OrderFilter, limit, offset int) ([]*entity.Order, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + orderColumns + ` FROM orders WHERE 1=1`)

	args, argCount := appendOrderFilter(&queryBuilder, filter, []interface{}{})

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := or.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		or.log.Error("Failed to list orders",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			or.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		or.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}

func (or *orderRepository) Count(ctx context.Context, filter OrderFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM orders WHERE 1=1`)

	args, _ := appendOrderFilter(&queryBuilder, filter, []interface{}{})

	var count int64
	err := or.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		or.log.Error("Database error counting orders", zap.Error(err))
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}

func (or *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET order_status = $2 WHERE id = $1`

	result, err := or.db.Exec(ctx, query, id, status)
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	return nil
}

func (or *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := or.db.Exec(ctx, query, id)
	if err != nil {
		or.log.Error("Failed to delete order",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete order %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %s not found", id.String())
	}

	or.log.Info("Order deleted", zap.String("id", id.String()))
	return nil
}
