// Package dto provides data transfer objects for video HTTP handling.
package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/crewhub/internal/validation"
	videoDomain "github.com/allisson/crewhub/internal/video/domain"
)

// CreateVideoRequest contains the parameters for creating a video.
type CreateVideoRequest struct {
	CompanyID       string `json:"company_id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
}

// Validate checks if the create video request is valid.
func (r *CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CompanyID,
			validation.Required,
			customValidation.UUID,
		),
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.URL,
			validation.Required,
			customValidation.URL,
		),
		validation.Field(&r.DurationSeconds,
			validation.Required,
			validation.Min(1),
		),
	)
}

// UpdateVideoRequest contains the parameters for updating a video.
type UpdateVideoRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	URL             string `json:"url"`
	DurationSeconds int    `json:"duration_seconds"`
	IsActive        bool   `json:"is_active"`
}

// Validate checks if the update video request is valid.
func (r *UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.URL,
			validation.Required,
			customValidation.URL,
		),
		validation.Field(&r.DurationSeconds,
			validation.Required,
			validation.Min(1),
		),
	)
}

// VideoResponse represents a video in API responses.
type VideoResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	URL             string    `json:"url"`
	DurationSeconds int       `json:"duration_seconds"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MapVideoToResponse converts a domain video to an API response.
func MapVideoToResponse(video *videoDomain.Video) VideoResponse {
	return VideoResponse{
		ID:              video.ID.String(),
		CompanyID:       video.CompanyID.String(),
		Title:           video.Title,
		Description:     video.Description,
		URL:             video.URL,
		DurationSeconds: video.DurationSeconds,
		IsActive:        video.IsActive,
		CreatedAt:       video.CreatedAt,
		UpdatedAt:       video.UpdatedAt,
	}
}

// ListVideosResponse represents a paginated list of videos.
type ListVideosResponse struct {
	Data []VideoResponse `json:"data"`
}

// MapVideosToListResponse converts domain videos to a list API response.
func MapVideosToListResponse(videos []*videoDomain.Video) ListVideosResponse {
	responses := make([]VideoResponse, 0, len(videos))
	for _, video := range videos {
		responses = append(responses, MapVideoToResponse(video))
	}
	return ListVideosResponse{Data: responses}
}
