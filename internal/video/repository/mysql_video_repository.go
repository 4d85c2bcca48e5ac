package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/crewhub/internal/database"
	apperrors "github.com/allisson/crewhub/internal/errors"
	videoDomain "github.com/allisson/crewhub/internal/video/domain"
)

// MySQLVideoRepository implements Video persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLVideoRepository struct {
	db *sql.DB
}

// Create inserts a new Video into the MySQL database using BINARY(16) for UUIDs.
func (m *MySQLVideoRepository) Create(ctx context.Context, video *videoDomain.Video) error {
	querier := database.GetTx(ctx, m.db)

	id, err := video.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal video id")
	}
	companyID, err := video.CompanyID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `INSERT INTO videos (id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		companyID,
		video.Title,
		video.Description,
		video.URL,
		video.DurationSeconds,
		video.IsActive,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create video")
	}
	return nil
}

// Update modifies an existing Video in the MySQL database.
func (m *MySQLVideoRepository) Update(ctx context.Context, video *videoDomain.Video) error {
	querier := database.GetTx(ctx, m.db)

	id, err := video.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal video id")
	}

	query := `UPDATE videos
			  SET title = ?,
				  description = ?,
				  url = ?,
				  duration_seconds = ?,
				  is_active = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		video.Title,
		video.Description,
		video.URL,
		video.DurationSeconds,
		video.IsActive,
		video.UpdatedAt,
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update video")
	}
	return nil
}

// Get retrieves a Video by ID. Returns ErrVideoNotFound if no row matches.
func (m *MySQLVideoRepository) Get(ctx context.Context, videoID uuid.UUID) (*videoDomain.Video, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := videoID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal video id")
	}

	query := `SELECT id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at
			  FROM videos WHERE id = ?`

	var video videoDomain.Video
	var idBytes, companyIDBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&companyIDBytes,
		&video.Title,
		&video.Description,
		&video.URL,
		&video.DurationSeconds,
		&video.IsActive,
		&video.CreatedAt,
		&video.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, videoDomain.ErrVideoNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get video")
	}

	if video.ID, err = uuid.FromBytes(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal video id")
	}
	if video.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal company id")
	}
	return &video, nil
}

// ListByCompany retrieves videos of a company ordered by creation time.
func (m *MySQLVideoRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*videoDomain.Video, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := companyID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal company id")
	}

	query := `SELECT id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at
			  FROM videos WHERE company_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list videos")
	}
	defer rows.Close()

	videos := make([]*videoDomain.Video, 0)
	for rows.Next() {
		var video videoDomain.Video
		var idBytes, companyIDBytes []byte
		err := rows.Scan(
			&idBytes,
			&companyIDBytes,
			&video.Title,
			&video.Description,
			&video.URL,
			&video.DurationSeconds,
			&video.IsActive,
			&video.CreatedAt,
			&video.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan video")
		}
		if video.ID, err = uuid.FromBytes(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal video id")
		}
		if video.CompanyID, err = uuid.FromBytes(companyIDBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal company id")
		}
		videos = append(videos, &video)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate videos")
	}

	return videos, nil
}

// NewMySQLVideoRepository creates a new MySQL Video repository.
func NewMySQLVideoRepository(db *sql.DB) *MySQLVideoRepository {
	return &MySQLVideoRepository{db: db}
}
