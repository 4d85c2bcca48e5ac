package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/crewhub/internal/errors"
	videoDomain "github.com/allisson/crewhub/internal/video/domain"
)

// CompanyGateway exposes the company checks the video feature needs.
type CompanyGateway interface {
	Exists(ctx context.Context, companyID uuid.UUID) (bool, error)
}

type videoUseCase struct {
	videoRepo VideoRepository
	companies CompanyGateway
}

// Create registers a new training video for a company.
func (u *videoUseCase) Create(ctx context.Context, input *videoDomain.CreateVideoInput) (*videoDomain.Video, error) {
	exists, err := u.companies.Exists(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, "company not found")
	}

	now := time.Now().UTC()
	video := &videoDomain.Video{
		ID:              uuid.Must(uuid.NewV7()),
		CompanyID:       input.CompanyID,
		Title:           strings.TrimSpace(input.Title),
		Description:     strings.TrimSpace(input.Description),
		URL:             strings.TrimSpace(input.URL),
		DurationSeconds: input.DurationSeconds,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

// Update modifies a video.
func (u *videoUseCase) Update(ctx context.Context, videoID uuid.UUID, input *videoDomain.UpdateVideoInput) error {
	video, err := u.videoRepo.Get(ctx, videoID)
	if err != nil {
		return err
	}

	video.Title = strings.TrimSpace(input.Title)
	video.Description = strings.TrimSpace(input.Description)
	video.URL = strings.TrimSpace(input.URL)
	video.DurationSeconds = input.DurationSeconds
	video.IsActive = input.IsActive
	video.UpdatedAt = time.Now().UTC()

	return u.videoRepo.Update(ctx, video)
}

// Get retrieves a video by ID.
func (u *videoUseCase) Get(ctx context.Context, videoID uuid.UUID) (*videoDomain.Video, error) {
	return u.videoRepo.Get(ctx, videoID)
}

// ListByCompany retrieves videos belonging to a company.
func (u *videoUseCase) ListByCompany(ctx context.Context, companyID uuid.UUID, offset, limit int) ([]*videoDomain.Video, error) {
	return u.videoRepo.ListByCompany(ctx, companyID, offset, limit)
}

// Delete deactivates a video so it no longer appears in training plans.
func (u *videoUseCase) Delete(ctx context.Context, videoID uuid.UUID) error {
	video, err := u.videoRepo.Get(ctx, videoID)
	if err != nil {
		return err
	}

	video.IsActive = false
	video.UpdatedAt = time.Now().UTC()

	return u.videoRepo.Update(ctx, video)
}

// NewVideoUseCase creates a new video use case with required dependencies.
func NewVideoUseCase(videoRepo VideoRepository, companies CompanyGateway) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		companies: companies,
	}
}
