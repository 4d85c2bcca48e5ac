// Package repository implements order persistence with PostgreSQL and MySQL backends.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
	orderDomain "github.com/allisson/crewhub/internal/order/domain"
)

// PostgreSQLOrderRepository implements Order persistence for PostgreSQL.
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// Create inserts a new Order into the PostgreSQL database.
func (p *PostgreSQLOrderRepository) Create(ctx context.Context, order *orderDomain.Order) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO orders (id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		order.ID,
		order.CompanyID,
		order.PlanName,
		order.AmountCents,
		order.Currency,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}
	return nil
}

// Update modifies an existing Order in the PostgreSQL database.
func (p *PostgreSQLOrderRepository) Update(ctx context.Context, order *orderDomain.Order) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE orders
			  SET plan_name = $1,
				  amount_cents = $2,
				  currency = $3,
				  status = $4,
				  updated_at = $5
			  WHERE id = $6`

	_, err := querier.ExecContext(
		ctx,
		query,
		order.PlanName,
		order.AmountCents,
		order.Currency,
		order.Status,
		order.UpdatedAt,
		order.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order")
	}
	return nil
}

// Get retrieves an Order by ID. Returns ErrOrderNotFound if no row matches.
func (p *PostgreSQLOrderRepository) Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at
			  FROM orders WHERE id = $1`

	var order orderDomain.Order
	err := querier.QueryRowContext(ctx, query, orderID).Scan(
		&order.ID,
		&order.CompanyID,
		&order.PlanName,
		&order.AmountCents,
		&order.Currency,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, orderDomain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get order")
	}
	return &order, nil
}

// ListByCompany retrieves orders of a company ordered by creation time.
func (p *PostgreSQLOrderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at
			  FROM orders WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close()

	orders := make([]*orderDomain.Order, 0)
	for rows.Next() {
		var order orderDomain.Order
		err := rows.Scan(
			&order.ID,
			&order.CompanyID,
			&order.PlanName,
			&order.AmountCents,
			&order.Currency,
			&order.Status,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan order")
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

// NewPostgreSQLOrderRepository creates a new PostgreSQL Order repository.
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{db: db}
}
