// Package usecase implements training video business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	videoDomain "github.com/allisson/crewhub/internal/video/domain"
)

// VideoRepository defines the persistence contract for videos.
type VideoRepository interface {
	Create(ctx context.Context, video *videoDomain.Video) error
	Update(ctx context.Context, video *videoDomain.Video) error
	Get(ctx context.Context, videoID uuid.UUID) (*videoDomain.Video, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*videoDomain.Video, error)
}

// VideoUseCase defines the business operations for videos.
type VideoUseCase interface {
	Create(ctx context.Context, input *videoDomain.CreateVideoInput) (*videoDomain.Video, error)
	Update(ctx context.Context, videoID uuid.UUID, input *videoDomain.UpdateVideoInput) error
	Get(ctx context.Context, videoID uuid.UUID) (*videoDomain.Video, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*videoDomain.Video, error)
	Delete(ctx context.Context, videoID uuid.UUID) error
}
