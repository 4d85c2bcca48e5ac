// Package repository implements manager persistence with PostgreSQL and MySQL backends.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
	managerDomain "github.com/allisson/crewhub/internal/manager/domain"
)

// PostgreSQLManagerRepository implements Manager persistence for PostgreSQL.
type PostgreSQLManagerRepository struct {
	db *sql.DB
}

// Create inserts a new Manager into the PostgreSQL database.
func (p *PostgreSQLManagerRepository) Create(ctx context.Context, manager *managerDomain.Manager) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO managers (id, company_id, name, email, password, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := querier.ExecContext(
		ctx,
		query,
		manager.ID,
		manager.CompanyID,
		manager.Name,
		manager.Email,
		manager.Password,
		manager.IsActive,
		manager.CreatedAt,
		manager.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create manager")
	}
	return nil
}

// Update modifies an existing Manager in the PostgreSQL database.
func (p *PostgreSQLManagerRepository) Update(ctx context.Context, manager *managerDomain.Manager) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE managers
			  SET name = $1,
				  email = $2,
				  is_active = $3,
				  updated_at = $4
			  WHERE id = $5`

	_, err := querier.ExecContext(
		ctx,
		query,
		manager.Name,
		manager.Email,
		manager.IsActive,
		manager.UpdatedAt,
		manager.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update manager")
	}
	return nil
}

// Get retrieves a Manager by ID. Returns ErrManagerNotFound if no row matches.
func (p *PostgreSQLManagerRepository) Get(ctx context.Context, managerID uuid.UUID) (*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE id = $1`

	return p.scanManager(querier.QueryRowContext(ctx, query, managerID))
}

// GetByEmail retrieves a Manager by email within a company.
func (p *PostgreSQLManagerRepository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE company_id = $1 AND email = $2`

	return p.scanManager(querier.QueryRowContext(ctx, query, companyID, email))
}

func (p *PostgreSQLManagerRepository) scanManager(row *sql.Row) (*managerDomain.Manager, error) {
	var manager managerDomain.Manager

	err := row.Scan(
		&manager.ID,
		&manager.CompanyID,
		&manager.Name,
		&manager.Email,
		&manager.Password,
		&manager.IsActive,
		&manager.CreatedAt,
		&manager.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, managerDomain.ErrManagerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get manager")
	}
	return &manager, nil
}

// ListByCompany retrieves managers of a company ordered by creation time.
func (p *PostgreSQLManagerRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list managers")
	}
	defer rows.Close()

	managers := make([]*managerDomain.Manager, 0)
	for rows.Next() {
		var manager managerDomain.Manager
		err := rows.Scan(
			&manager.ID,
			&manager.CompanyID,
			&manager.Name,
			&manager.Email,
			&manager.Password,
			&manager.IsActive,
			&manager.CreatedAt,
			&manager.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan manager")
		}
		managers = append(managers, &manager)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate managers")
	}

	return managers, nil
}

// NewPostgreSQLManagerRepository creates a new PostgreSQL Manager repository.
func NewPostgreSQLManagerRepository(db *sql.DB) *PostgreSQLManagerRepository {
	return &PostgreSQLManagerRepository{db: db}
}
