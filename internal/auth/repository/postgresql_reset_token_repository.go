// Package repository implements persistence for authentication entities with
// PostgreSQL and MySQL backends.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
)

// PostgreSQLResetTokenRepository implements ResetToken persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLResetTokenRepository struct {
	db *sql.DB
}

// Create inserts a new ResetToken into the PostgreSQL database.
func (p *PostgreSQLResetTokenRepository) Create(ctx context.Context, token *authDomain.ResetToken) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO password_reset_tokens (id, token_hash, principal_id, principal_type, expires_at, used, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.TokenHash,
		token.PrincipalID,
		string(token.PrincipalType),
		token.ExpiresAt,
		token.Used,
		token.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create reset token")
	}
	return nil
}

// GetByTokenHash retrieves a ResetToken by its hash. Returns
// ErrResetTokenNotFound if no token matches.
func (p *PostgreSQLResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.ResetToken, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, token_hash, principal_id, principal_type, expires_at, used, created_at
			  FROM password_reset_tokens WHERE token_hash = $1`

	var token authDomain.ResetToken
	var principalType string

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.TokenHash,
		&token.PrincipalID,
		&principalType,
		&token.ExpiresAt,
		&token.Used,
		&token.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrResetTokenNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get reset token")
	}

	token.PrincipalType = authDomain.PrincipalType(principalType)
	return &token, nil
}

// ConsumeByTokenHash atomically marks a token as used. The guard only
// matches an unused, unexpired token, so concurrent redeemers race on the
// row update and exactly one observes an affected row.
func (p *PostgreSQLResetTokenRepository) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE password_reset_tokens
			  SET used = TRUE
			  WHERE token_hash = $1 AND used = FALSE AND expires_at > $2`

	result, err := querier.ExecContext(ctx, query, tokenHash, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to consume reset token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return affected, nil
}

// DeleteExpired removes tokens whose expiry is before the cutoff.
func (p *PostgreSQLResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM password_reset_tokens WHERE expires_at < $1`

	result, err := querier.ExecContext(ctx, query, before)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired reset tokens")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to read affected rows")
	}
	return affected, nil
}

// CountExpired counts tokens whose expiry is before the cutoff.
func (p *PostgreSQLResetTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT COUNT(*) FROM password_reset_tokens WHERE expires_at < $1`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired reset tokens")
	}
	return count, nil
}

// NewPostgreSQLResetTokenRepository creates a new PostgreSQL ResetToken repository.
func NewPostgreSQLResetTokenRepository(db *sql.DB) *PostgreSQLResetTokenRepository {
	return &PostgreSQLResetTokenRepository{db: db}
}
