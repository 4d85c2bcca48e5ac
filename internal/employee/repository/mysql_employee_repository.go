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

// MySQLEmployeeRepository implements Employee persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLEmployeeRepository struct {
	db *sql.DB
}

// Create inserts a new Employee into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	id, err := employee.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal employee id")
	}
	companyID, err := employee.CompanyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `INSERT INTO employees (id, company_id, name, email, birth_date, password, position, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		companyID,
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

// Update modifies an existing Employee in the MySQL database.
func (m *MySQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, m.db)

	id, err := employee.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal employee id")
	}

	query := `UPDATE employees
			  SET name = ?,
				  email = ?,
				  birth_date = ?,
				  position = ?,
				  status = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		employee.Name,
		employee.Email,
		employee.BirthDate,
		employee.Position,
		employee.Status,
		employee.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}
	return nil
}

// Get retrieves an Employee by ID. Returns ErrEmployeeNotFound if no row matches.
func (m *MySQLEmployeeRepository) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := employeeID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal employee id")
	}

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE id = ?`

	return m.scanEmployee(querier.QueryRowContext(ctx, query, id))
}

// GetByEmail retrieves an Employee by email within a company.
func (m *MySQLEmployeeRepository) GetByEmail(ctx context.Context, companyID uuid.UUID, email string) (*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE company_id = ? AND email = ?`

	return m.scanEmployee(querier.QueryRowContext(ctx, query, id, email))
}

func (m *MySQLEmployeeRepository) scanEmployee(row *sql.Row) (*employeeDomain.Employee, error) {
	var employee employeeDomain.Employee
	var idBytes, companyIDBytes []byte

	err := row.Scan(
		&idBytes,
		&companyIDBytes,
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

	if employee.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal employee id")
	}
	if employee.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}
	return &employee, nil
}

// ListByCompany retrieves employees of a company ordered by creation time.
func (m *MySQLEmployeeRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, name, email, birth_date, password, position, status, created_at, updated_at
			  FROM employees WHERE company_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	employees := make([]*employeeDomain.Employee, 0)
	for rows.Next() {
		var employee employeeDomain.Employee
		var idBytes, companyIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&companyIDBytes,
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
		if employee.ID, err = uuid.FromBytes(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal employee id")
		}
		if employee.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal company id")
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}

	return employees, nil
}

// NewMySQLEmployeeRepository creates a new MySQL Employee repository.
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{db: db}
}
