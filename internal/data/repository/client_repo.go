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

// ClientFilter narrows client listings. Name and email are substring
// matches, case-insensitive.
type ClientFilter struct {
	Name  string
	Email string
}

type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	FindByEmail(ctx context.Context, email string) (*entity.Client, error)
	FindByCPF(ctx context.Context, cpf string) (*entity.Client, error)
	FindAll(ctx context.Context, filter ClientFilter, limit, offset int) ([]*entity.Client, error)
	Count(ctx context.Context, filter ClientFilter) (int64, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type clientRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClientRepository(db database.PgxIface, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:  db,
		log: log,
	}
}

const clientColumns = `id, cli_name, cli_email, cli_cpf, cli_phone, cli_address, cli_active, created_at`

func scanClient(row pgx.Row) (*entity.Client, error) {
	var client entity.Client
	err := row.Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.CPF,
		&client.Phone,
		&client.Address,
		&client.IsActive,
		&client.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (cr *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (id, cli_name, cli_email, cli_cpf, cli_phone,
		                     cli_address, cli_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := cr.db.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.CPF,
		client.Phone,
		client.Address,
		client.IsActive,
		client.CreatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to create client",
			zap.Error(err),
			zap.String("email", client.Email),
		)
		return fmt.Errorf("create client %s: %w", client.Email, err)
	}

	return nil
}

func (cr *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`

	client, err := scanClient(cr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client by ID",
			zap.Error(err),
			zap.String("client_id", id.String()),
		)
		return nil, fmt.Errorf("find client by ID %s: %w", id.String(), err)
	}

	return client, nil
}

func (cr *clientRepository) FindByEmail(ctx context.Context, email string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cli_email = $1`

	client, err := scanClient(cr.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find client by email %s: %w", email, err)
	}

	return client, nil
}

func (cr *clientRepository) FindByCPF(ctx context.Context, cpf string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE cli_cpf = $1`

	client, err := scanClient(cr.db.QueryRow(ctx, query, cpf))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find client by CPF", zap.Error(err))
		return nil, fmt.Errorf("find client by CPF: %w", err)
	}

	return client, nil
}

func (cr *clientRepository) FindAll(ctx context.Context, filter ClientFilter, limit, offset int) ([]*entity.Client, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + clientColumns + ` FROM clients WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if filter.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND cli_name ILIKE $%d", argCount))
		args = append(args, "%"+filter.Name+"%")
		argCount++
	}

	if filter.Email != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND cli_email ILIKE $%d", argCount))
		args = append(args, "%"+filter.Email+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := cr.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		cr.log.Error("Failed to list clients",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			cr.log.Error("Failed to scan client row", zap.Error(err))
			return nil, fmt.Errorf("scan client row: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		cr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate clients rows: %w", err)
	}

	return clients, nil
}

func (cr *clientRepository) Count(ctx context.Context, filter ClientFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM clients WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if filter.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND cli_name ILIKE $%d", argCount))
		args = append(args, "%"+filter.Name+"%")
		argCount++
	}

	if filter.Email != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND cli_email ILIKE $%d", argCount))
		args = append(args, "%"+filter.Email+"%")
		argCount++
	}

	var count int64
	err := cr.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count)
	if err != nil {
		cr.log.Error("Database error counting clients", zap.Error(err))
		return 0, fmt.Errorf("count clients: %w", err)
	}

	return count, nil
}

func (cr *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		SET cli_name = $2, cli_email = $3, cli_cpf = $4, cli_phone = $5,
		    cli_address = $6, cli_active = $7
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.CPF,
		client.Phone,
		client.Address,
		client.IsActive,
	)

	if err != nil {
		cr.log.Error("Failed to update client",
			zap.Error(err),
			zap.String("client_id", client.ID.String()),
		)
		return fmt.Errorf("update client %s: %w", client.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s not found", client.ID.String())
	}

	return nil
}

func (cr *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete client",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete client %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("client %s not found", id.String())
	}

	cr.log.Info("Client deleted", zap.String("id", id.String()))
	return nil
}
