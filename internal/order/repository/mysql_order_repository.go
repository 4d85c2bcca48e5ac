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

// MySQLOrderRepository implements Order persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLOrderRepository struct {
	db *sql.DB
}

// Create inserts a new Order into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLOrderRepository) Create(ctx context.Context, order *orderDomain.Order) error {
	querier := database.GetTx(ctx, m.db)

	id, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}
	companyID, err := order.CompanyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `INSERT INTO orders (id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		companyID,
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

// Update modifies an existing Order in the MySQL database.
func (m *MySQLOrderRepository) Update(ctx context.Context, order *orderDomain.Order) error {
	querier := database.GetTx(ctx, m.db)

	id, err := order.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `UPDATE orders
			  SET plan_name = ?,
				  amount_cents = ?,
				  currency = ?,
				  status = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		order.PlanName,
		order.AmountCents,
		order.Currency,
		order.Status,
		order.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order")
	}
	return nil
}

// Get retrieves an Order by ID. Returns ErrOrderNotFound if no row matches.
func (m *MySQLOrderRepository) Get(ctx context.Context, orderID uuid.UUID) (*orderDomain.Order, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := orderID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal order id")
	}

	query := `SELECT id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at
			  FROM orders WHERE id = ?`

	var order orderDomain.Order
	var idBytes, companyIDBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&companyIDBytes,
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

	if order.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal order id")
	}
	if order.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}
	return &order, nil
}

// ListByCompany retrieves orders of a company ordered by creation time.
func (m *MySQLOrderRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*orderDomain.Order, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, plan_name, amount_cents, currency, status, created_at, updated_at
			  FROM orders WHERE company_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close()

	orders := make([]*orderDomain.Order, 0)
	for rows.Next() {
		var order orderDomain.Order
		var idBytes, companyIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&companyIDBytes,
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
		if order.ID, err = uuid.FromBytes(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal order id")
		}
		if order.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal company id")
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

// NewMySQLOrderRepository creates a new MySQL Order repository.
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}
