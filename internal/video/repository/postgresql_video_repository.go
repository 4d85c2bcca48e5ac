// Package repository implements video persistence with PostgreSQL and MySQL backends.
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

// PostgreSQLVideoRepository implements Video persistence for PostgreSQL.
type PostgreSQLVideoRepository struct {
	db *sql.DB
}

// Create inserts a new Video into the PostgreSQL database.
func (p *PostgreSQLVideoRepository) Create(ctx context.Context, video *videoDomain.Video) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO videos (id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := querier.ExecContext(
		ctx,
		query,
		video.ID,
		video.CompanyID,
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

// Update modifies an existing Video in the PostgreSQL database.
func (p *PostgreSQLVideoRepository) Update(ctx context.Context, video *videoDomain.Video) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE videos
			  SET title = $1,
				  description = $2,
				  url = $3,
				  duration_seconds = $4,
				  is_active = $5,
				  updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		video.Title,
		video.Description,
		video.URL,
		video.DurationSeconds,
		video.IsActive,
		video.UpdatedAt,
		video.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update video")
	}
	return nil
}

// Get retrieves a Video by ID. Returns ErrVideoNotFound if no row matches.
func (p *PostgreSQLVideoRepository) Get(ctx context.Context, videoID uuid.UUID) (*videoDomain.Video, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at
			  FROM videos WHERE id = $1`

	var video videoDomain.Video
	err := querier.QueryRowContext(ctx, query, videoID).Scan(
		&video.ID,
		&video.CompanyID,
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
	return &video, nil
}

// ListByCompany retrieves videos of a company ordered by creation time.
func (p *PostgreSQLVideoRepository) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*videoDomain.Video, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_id, title, description, url, duration_seconds, is_active, created_at, updated_at
			  FROM videos WHERE company_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list videos")
	}
	defer rows.Close()

	videos := make([]*videoDomain.Video, 0)
	for rows.Next() {
		var video videoDomain.Video
		err := rows.Scan(
			&video.ID,
			&video.CompanyID,
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
		videos = append(videos, &video)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate videos")
	}

	return videos, nil
}

// NewPostgreSQLVideoRepository creates a new PostgreSQL Video repository.
func NewPostgreSQLVideoRepository(db *sql.DB) *PostgreSQLVideoRepository {
	return &PostgreSQLVideoRepository{db: db}
}
