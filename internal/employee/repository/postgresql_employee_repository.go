// Package repository implements employee persistence with PostgreSQL and MySQL backends.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/database"
	employeeDomain "github.com/allisson/crewhub/internal/employee/domain"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// PostgreSQLEmployeeRepository implements Employee persistence for PostgreSQL.
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// Create inserts a new Employee into the PostgreSQL database.
func (p *PostgreSQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO employees (id, company_id, name, email, birth_date, password, position, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.ID,
		employee.CompanyID,
		employee.Name,
		employee.Email,
		employee.BirthDate,
		employee.Password,
		employee.Position,
		employee.Status,
		employee.CreatedAt,
		employee.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Update modifies an existing Employee in the PostgreSQL database.
func (p *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE employees
			  SET name = $1,
				  email = $2,
				  birth_date = $3,
				  position = $4,
				  status = $5,
				  updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.BirthDate,
		employee.Position,
		employee.Status,
		employee.UpdatedAt,
		employee.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}
	return nil
}

// Get retrieves an Employee by ID. Returns ErrEmployeeNotFound if no row matches.
func (p *PostgreSQLEmployeeRepository) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE id = $1`

	return p.scanEmployee(querier.QueryRowContext(ctx, query, employeeID))
}

// GetByEmail retrieves an Employee by email within a company.
func (p *PostgreSQLEmployeeRepository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE company_id = $1 AND email = $2`

	return p.scanEmployee(querier.QueryRowContext(ctx, query, companyID, email))
}

func (p *PostgreSQLEmployeeRepository) scanEmployee(row *sql.Row) (*employeeDomain.Employee, error) {
	var employee employeeDomain.Employee

	err := row.Scan(
		&employee.ID,
		&employee.CompanyID,
		&employee.Name,
		&employee.Email,
		&employee.BirthDate,
		&employee.Password,
		&employee.Position,
		&employee.Status,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee")
	}
	return &employee, nil
}

// ListByCompany retrieves employees of a company ordered by creation time.
func (p *PostgreSQLEmployeeRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	employees := make([]*employeeDomain.Employee, 0)
	for rows.Next() {
		var employee employeeDomain.Employee
		err := rows.Scan(
			&employee.ID,
			&employee.CompanyID,
			&employee.Name,
			&employee.Email,
			&employee.BirthDate,
			&employee.Password,
			&employee.Position,
			&employee.Status,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee")
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}

	return employees, nil
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQL Employee repository.
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{db: db}
}
