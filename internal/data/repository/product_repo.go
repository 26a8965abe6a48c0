package repository

import (
	"context"
	"fmt"
	"strings"

	"clothing-shop/internal/data/entity"
	"clothing-shop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ProductFilter narrows product listings. Availability true means the
// product has stock left, false means it is sold out.
type ProductFilter struct {
	Category     string
	Price        *float64
	Availability *bool
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log,
	}
}

const productColumns = `id, prod_name, prod_desc, prod_price, prod_cat, prod_section,
	       prod_barcode, prod_size, prod_color, prod_imgs, prod_dtval,
	       prod_initialstock, prod_stock, created_at, updated_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Section,
		&product.Barcode,
		&product.Sizes,
		&product.Colors,
		&product.Images,
		&product.ExpiryDate,
		&product.InitialStock,
		&product.Stock,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, prod_name, prod_desc, prod_price, prod_cat,
		                      prod_section, prod_barcode, prod_size, prod_color,
		                      prod_imgs, prod_dtval, prod_initialstock, prod_stock,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := pr.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Section,
		product.Barcode,
		product.Sizes,
		product.Colors,
		product.Images,
		product.ExpiryDate,
		product.InitialStock,
		product.Stock,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

// FindByIDs fetches every product whose id is in the given set. Callers
// compare the result size against the distinct request size to detect
// unknown references.
func (pr *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1)`

	rows, err := pr.db.Query(ctx, query, ids)
	if err != nil {
		pr.log.Error("Failed to find products by IDs", zap.Error(err))
		return nil, fmt.Errorf("find products by IDs: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

func appendProductFilter(queryBuilder *strings.Builder, filter ProductFilter, args []interface{}) ([]interface{}, int) {
	argCount := len(args) + 1

	if filter.Category != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND prod_cat = $%d", argCount))
		args = append(args, filter.Category)
		argCount++
	}

	if filter.Price != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND prod_price = $%d", argCount))
		args = append(args, *filter.Price)
		argCount++
	}

	if filter.Availability != nil {
		if *filter.Availability {
			queryBuilder.WriteString(" AND prod_stock > 0")
		} else {
			queryBuilder.WriteString(" AND prod_stock = 0")
		}
	}

	return args, argCount
}

func (pr *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productColumns + ` FROM products WHERE 1=1`)

	args, argCount := appendProductFilter(&queryBuilder, filter, []interface{}{})

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := pr.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		pr.log.Error("Failed to list products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

func (pr *productRepository) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM products WHERE 1=1`)

	args, _ := appendProductFilter(&queryBuilder, filter, []interface{}{})

	var count int64
	err := pr.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		pr.log.Error("Database error counting products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (pr *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET prod_name = $2, prod_desc = $3, prod_price = $4, prod_cat = $5,
		    prod_section = $6, prod_barcode = $7, prod_size = $8, prod_color = $9,
		    prod_imgs = $10, prod_dtval = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := pr.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Section,
		product.Barcode,
		product.Sizes,
		product.Colors,
		product.Images,
		product.ExpiryDate,
		product.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID.String())
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id.String())
	}

	pr.log.Info("Product deleted", zap.String("id", id.String()))
	return nil
}
