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

// MySQLResetTokenRepository implements ResetToken persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLResetTokenRepository struct {
	db *sql.DB
}

// Create inserts a new ResetToken into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLResetTokenRepository) Create(ctx context.Context, token *authDomain.ResetToken) error {
	querier := database.GetTx(ctx, m.db)

	id, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal token id")
	}
	principalID, err := token.PrincipalID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal principal id")
	}

	query := `INSERT INTO password_reset_tokens (id, token_hash, principal_id, principal_type, expires_at, used, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		token.TokenHash,
		principalID,
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
func (m *MySQLResetTokenRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.ResetToken, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, token_hash, principal_id, principal_type, expires_at, used, created_at
			  FROM password_reset_tokens WHERE token_hash = ?`

	var token authDomain.ResetToken
	var idBytes, principalIDBytes []byte
	var principalType string

	err := querier.QueryRowContext(ctx, query, tokenHash).Scan(
		&idBytes,
		&token.TokenHash,
		&principalIDBytes,
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

	if token.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal token id")
	}
	if token.PrincipalID, err = uuid.FromBytes(principalIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal principal id")
	}
	token.PrincipalType = authDomain.PrincipalType(principalType)

	return &token, nil
}

// ConsumeByTokenHash atomically marks a token as used. The guard only
// matches an unused, unexpired token, so concurrent redeemers race on the
// row update and exactly one observes an affected row.
func (m *MySQLResetTokenRepository) ConsumeByTokenHash(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE password_reset_tokens
			  SET used = TRUE
			  WHERE token_hash = ? AND used = FALSE AND expires_at > ?`

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
func (m *MySQLResetTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM password_reset_tokens WHERE expires_at < ?`

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
func (m *MySQLResetTokenRepository) CountExpired(ctx context.Context, before time.Time) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT COUNT(*) FROM password_reset_tokens WHERE expires_at < ?`

	var count int64
	if err := querier.QueryRowContext(ctx, query, before).Scan(&count); err != nil {
		return 0, apperrors.Wrap(err, "failed to count expired reset tokens")
	}
	return count, nil
}

// NewMySQLResetTokenRepository creates a new MySQL ResetToken repository.
func NewMySQLResetTokenRepository(db *sql.DB) *MySQLResetTokenRepository {
	return &MySQLResetTokenRepository{db: db}
}
