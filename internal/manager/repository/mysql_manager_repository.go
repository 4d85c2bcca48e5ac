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

// MySQLManagerRepository implements Manager persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLManagerRepository struct {
	db *sql.DB
}

// Create inserts a new Manager into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLManagerRepository) Create(ctx context.Context, manager *managerDomain.Manager) error {
	querier := database.GetTx(ctx, m.db)

	id, err := manager.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal manager id")
	}
	companyID, err := manager.CompanyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `INSERT INTO managers (id, company_id, name, email, password, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		companyID,
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

// Update modifies an existing Manager in the MySQL database.
func (m *MySQLManagerRepository) Update(ctx context.Context, manager *managerDomain.Manager) error {
	querier := database.GetTx(ctx, m.db)

	id, err := manager.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal manager id")
	}

	query := `UPDATE managers
			  SET name = ?,
				  email = ?,
				  is_active = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		manager.Name,
		manager.Email,
		manager.IsActive,
		manager.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update manager")
	}
	return nil
}

// Get retrieves a Manager by ID. Returns ErrManagerNotFound if no row matches.
func (m *MySQLManagerRepository) Get(ctx context.Context, managerID uuid.UUID) (*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := managerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal manager id")
	}

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE id = ?`

	return m.scanManager(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a Manager by email within a company.
func (m *MySQLManagerRepository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE company_id = ? AND email = ?`

	return m.scanManager(querier.QueryRowContext(ctx, query, id, email))
}

func (m *MySQLManagerRepository) scanManager(row *sql.Row) (*managerDomain.Manager, error) {
	var manager managerDomain.Manager
	var idBytes, companyIDBytes []byte

	err := row.Scan(
		&idBytes,
		&companyIDBytes,
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

	if manager.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal manager id")
	}
	if manager.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}
	return &manager, nil
}

// ListByCompany retrieves managers of a company ordered by creation time.
func (m *MySQLManagerRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*managerDomain.Manager, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, name, email, password, is_active, created_at, updated_at
			  FROM managers WHERE company_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list managers")
	}
	defer rows.Close()

	managers := make([]*managerDomain.Manager, 0)
	for rows.Next() {
		var manager managerDomain.Manager
		var idBytes, companyIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&companyIDBytes,
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
		if manager.ID, err = uuid.FromBytes(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal manager id")
		}
		if manager.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal company id")
		}
		managers = append(managers, &manager)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate managers")
	}

	return managers, nil
}

// NewMySQLManagerRepository creates a new MySQL Manager repository.
func NewMySQLManagerRepository(db *sql.DB) *MySQLManagerRepository {
	return &MySQLManagerRepository{db: db}
}
