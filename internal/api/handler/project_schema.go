package handler

import (
	"time"

	"github.com/northbound/studio-api/internal/core/domain"
)

type createProjectRequest struct {
	Title    string     `json:"title"    validate:"required"`
	Script   string     `json:"script"`
	Deadline *time.Time `json:"deadline"`
}

// assignVideographerRequest names the videographer by account id, which is
// also the id of their directory entry.
type assignVideographerRequest struct {
	VideographerID string `json:"videographer_id" validate:"required"`
}

type setProjectStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft submitted estimating approved in_progress review revision complete"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listProjectsResponse struct {
	Data       []*domain.Project  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
