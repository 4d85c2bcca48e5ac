// Package repository implements company persistence with PostgreSQL and MySQL backends.
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

// PostgreSQLCompanyRepository implements Company persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLCompanyRepository struct {
	db *sql.DB
}

// Create inserts a new Company into the PostgreSQL database.
func (p *PostgreSQLCompanyRepository) Create(ctx context.Context, company *companyDomain.Company) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO companies (id, name, email, document, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		company.ID,
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

// Update modifies an existing Company in the PostgreSQL database.
func (p *PostgreSQLCompanyRepository) Update(ctx context.Context, company *companyDomain.Company) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE companies
			  SET name = $1,
				  email = $2,
				  document = $3,
				  is_active = $4,
				  updated_at = $5
			  WHERE id = $6`

	_, err := querier.ExecContext(
		ctx,
		query,
		company.Name,
		company.Email,
		company.Document,
		company.IsActive,
		company.UpdatedAt,
		company.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update company")
	}
	return nil
}

// Get retrieves a Company by ID. Returns ErrCompanyNotFound if no row matches.
func (p *PostgreSQLCompanyRepository) Get(ctx context.Context, companyID uuid.UUID) (*companyDomain.Company, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies WHERE id = $1`

	return p.scanCompany(querier.QueryRowContext(ctx, query, companyID))
}

// GetByEmail retrieves a Company by email. Returns ErrCompanyNotFound if no row matches.
func (p *PostgreSQLCompanyRepository) GetByEmail(ctx context.Context, email string) (*companyDomain.Company, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies WHERE email = $1`

	return p.scanCompany(querier.QueryRowContext(ctx, query, email))
}

func (p *PostgreSQLCompanyRepository) scanCompany(row *sql.Row) (*companyDomain.Company, error) {
	var company companyDomain.Company

	err := row.Scan(
		&company.ID,
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
	return &company, nil
}

// List retrieves companies ordered by creation time.
func (p *PostgreSQLCompanyRepository) List(ctx context.Context, offset, limit int) ([]*companyDomain.Company, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, email, document, is_active, created_at, updated_at
			  FROM companies ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list companies")
	}
	defer rows.Close()

	companies := make([]*companyDomain.Company, 0)
	for rows.Next() {
		var company companyDomain.Company
		err := rows.Scan(
			&company.ID,
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
		companies = append(companies, &company)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate companies")
	}

	return companies, nil
}

// NewPostgreSQLCompanyRepository creates a new PostgreSQL Company repository.
func NewPostgreSQLCompanyRepository(db *sql.DB) *PostgreSQLCompanyRepository {
	return &PostgreSQLCompanyRepository{db: db}
}
