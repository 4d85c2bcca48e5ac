package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	companyDomain "github.com/allisson/crewhub/internal/company/domain"
	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// MySQLCompanyRepository implements Company persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLCompanyRepository struct {
	db *sql.DB
}

// Create inserts a new Company into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLCompanyRepository) Create(ctx context.Context, company *companyDomain.Company) error {
	querier := database.GetTx(ctx, m.db)

	id, err := company.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `INSERT INTO companies (id, name, email, document, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		company.Name,
		company.Email,
		company.Document,
		company.IsActive,
		company.CreatedAt,
		company.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create company")
	}
	return nil
}

// Update modifies an existing Company in the MySQL database.
func (m *MySQLCompanyRepository) Update(ctx context.Context, company *companyDomain.Company) error {
	querier := database.GetTx(ctx, m.db)

	id, err := company.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `UPDATE companies
			  SET name = ?,
				  email = ?,
				  document = ?,
				  is_active = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		company.Name,
		company.Email,
		company.Document,
		company.IsActive,
		company.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update company")
	}
	return nil
}

// Get retrieves a Company by ID. Returns ErrCompanyNotFound if no row matches.
func (m *MySQLCompanyRepository) Get(ctx context.Context, companyID uuid.UUID) (*companyDomain.Company, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies WHERE id = ?`

	return m.scanCompany(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves a Company by email. Returns ErrCompanyNotFound if no row matches.
func (m *MySQLCompanyRepository) GetByEmail(ctx context.Context, email string) (*companyDomain.Company, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies WHERE email = ?`

	return m.scanCompany(querier.QueryRowContext(ctx, query, email))
}

func (m *MySQLCompanyRepository) scanCompany(row *sql.Row) (*companyDomain.Company, error) {
	var company companyDomain.Company
	var idBytes []byte

	err := row.Scan(
		&idBytes,
		&company.Name,
		&company.Email,
		&company.Document,
		&company.IsActive,
		&company.CreatedAt,
		&company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, companyDomain.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get company")
	}

	if company.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}
	return &company, nil
}

// List retrieves companies ordered by creation time.
func (m *MySQLCompanyRepository) List(ctx context.Context, offset, limit int) ([]*companyDomain.Company, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list companies")
	}
	defer rows.Close()

	companies := make([]*companyDomain.Company, 0)
	for rows.Next() {
		var company companyDomain.Company
		var idBytes []byte
		err := rows.Scan(
			&idBytes,
			&company.Name,
			&company.Email,
			&company.Document,
			&company.IsActive,
			&company.CreatedAt,
			&company.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan company")
		}
		if company.ID, err = uuid.FromBytes(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal company id")
		}
		companies = append(companies, &company)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate companies")
	}

	return companies, nil
}

// NewMySQLCompanyRepository creates a new MySQL Company repository.
func NewMySQLCompanyRepository(db *sql.DB) *MySQLCompanyRepository {
	return &MySQLCompanyRepository{db: db}
}
