package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// PostgreSQLPrincipalRepository reads manager and employee rows as
// authentication principals and writes credential digests back.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLPrincipalRepository struct {
	db *sql.DB
}

// Get retrieves a principal by type and ID. Returns ErrPrincipalNotFound if
// no row matches.
func (p *PostgreSQLPrincipalRepository) Get(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID) (*authDomain.Principal, error) {
	switch principalType {
	case authDomain.PrincipalTypeManager:
		return p.getManager(ctx, principalID)
	case authDomain.PrincipalTypeEmployee:
		return p.getEmployee(ctx, principalID)
	default:
		return nil, authDomain.ErrPrincipalNotFound
	}
}

func (p *PostgreSQLPrincipalRepository) getManager(ctx context.Context, principalID uuid.UUID) (*authDomain.Principal, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, password, is_active
			  FROM managers WHERE id = $1`

	principal := authDomain.Principal{Type: authDomain.PrincipalTypeManager}

	err := querier.QueryRowContext(ctx, query, principalID).Scan(
		&principal.ID,
		&principal.CompanyID,
		&principal.Name,
		&principal.Email,
		&principal.Credential,
		&principal.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get manager principal")
	}

	return &principal, nil
}

func (p *PostgreSQLPrincipalRepository) getEmployee(ctx context.Context, principalID uuid.UUID) (*authDomain.Principal, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, name, email, password, birth_date, status
			  FROM employees WHERE id = $1`

	principal := authDomain.Principal{Type: authDomain.PrincipalTypeEmployee}
	var status string

	err := querier.QueryRowContext(ctx, query, principalID).Scan(
		&principal.ID,
		&principal.CompanyID,
		&principal.Name,
		&principal.Email,
		&principal.Credential,
		&principal.BirthDate,
		&status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee principal")
	}

	principal.IsActive = status == "active"
	return &principal, nil
}

// UpdateCredential stores a new credential digest for the principal.
// Returns ErrPrincipalNotFound when no row matches.
func (p *PostgreSQLPrincipalRepository) UpdateCredential(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID, hashedSecret string) error {
	querier := database.GetTx(ctx, p.db)

	var query string
	switch principalType {
	case authDomain.PrincipalTypeManager:
		query = `UPDATE managers SET password = $1, updated_at = $2 WHERE id = $3`
	case authDomain.PrincipalTypeEmployee:
		query = `UPDATE employees SET password = $1, updated_at = $2 WHERE id = $3`
	default:
		return authDomain.ErrPrincipalNotFound
	}

	result, err := querier.ExecContext(ctx, query, hashedSecret, time.Now().UTC(), principalID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update credential")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return authDomain.ErrPrincipalNotFound
	}
	return nil
}

// NewPostgreSQLPrincipalRepository creates a new PostgreSQL principal repository.
func NewPostgreSQLPrincipalRepository(db *sql.DB) *PostgreSQLPrincipalRepository {
	return &PostgreSQLPrincipalRepository{db: db}
}
