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

// MySQLPrincipalRepository reads manager and employee rows as authentication
// principals and writes credential digests back.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLPrincipalRepository struct {
	db *sql.DB
}

// Get retrieves a principal by type and ID. Returns ErrPrincipalNotFound if
// no row matches.
func (m *MySQLPrincipalRepository) Get(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID) (*authDomain.Principal, error) {
	switch principalType {
	case authDomain.PrincipalTypeManager:
		return m.getManager(ctx, principalID)
	case authDomain.PrincipalTypeEmployee:
		return m.getEmployee(ctx, principalID)
	default:
		return nil, authDomain.ErrPrincipalNotFound
	}
}

func (m *MySQLPrincipalRepository) getManager(ctx context.Context, principalID uuid.UUID) (*authDomain.Principal, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := principalID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal principal id")
	}

	query := `SELECT id, company_id, name, email, password, is_active
			  FROM managers WHERE id = ?`

	principal := authDomain.Principal{Type: authDomain.PrincipalTypeManager}
	var idBytes, companyIDBytes []byte

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&companyIDBytes,
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

	if principal.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal principal id")
	}
	if principal.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}

	return &principal, nil
}

func (m *MySQLPrincipalRepository) getEmployee(ctx context.Context, principalID uuid.UUID) (*authDomain.Principal, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := principalID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal principal id")
	}

	query := `SELECT id, company_id, name, email, password, birth_date, status
			  FROM employees WHERE id = ?`

	principal := authDomain.Principal{Type: authDomain.PrincipalTypeEmployee}
	var idBytes, companyIDBytes []byte
	var status string

	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&companyIDBytes,
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

	if principal.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal principal id")
	}
	if principal.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}

	principal.IsActive = status == "active"
	return &principal, nil
}

// UpdateCredential stores a new credential digest for the principal.
// Returns ErrPrincipalNotFound when no row matches.
func (m *MySQLPrincipalRepository) UpdateCredential(ctx context.Context, principalType authDomain.PrincipalType, principalID uuid.UUID, hashedSecret string) error {
	querier := database.GetTx(ctx, m.db)

	id, err := principalID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal principal id")
	}

	var query string
	switch principalType {
	case authDomain.PrincipalTypeManager:
		query = `UPDATE managers SET password = ?, updated_at = ? WHERE id = ?`
	case authDomain.PrincipalTypeEmployee:
		query = `UPDATE employees SET password = ?, updated_at = ? WHERE id = ?`
	default:
		return authDomain.ErrPrincipalNotFound
	}

	result, err := querier.ExecContext(ctx, query, hashedSecret, time.Now().UTC(), id)
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

// NewMySQLPrincipalRepository creates a new MySQL principal repository.
func NewMySQLPrincipalRepository(db *sql.DB) *MySQLPrincipalRepository {
	return &MySQLPrincipalRepository{db: db}
}
