package ports

import (
	"context"
	"time"

	"github.com/northbound/studio-api/internal/core/domain"
)

// ProjectFilter carries repository-level query parameters for listing projects.
type ProjectFilter struct {
	CustomerID     string // non-empty = scoped to a customer
	VideographerID string // non-empty = scoped to an assigned videographer
	Status         string // optional: filter by project status
	Search         string // optional: partial match on title
	Page           int    // 1-based
	Limit          int    // max rows per page (capped by the service)
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// List returns a page of projects matching filter and the total count.
	List(ctx context.Context, filter ProjectFilter) ([]*domain.Project, int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus, at time.Time) error
	AssignVideographer(ctx context.Context, id, videographerID string, at time.Time) error
	// AddUsage bumps the project's asset count and storage/transfer totals.
	AddUsage(ctx context.Context, id string, storageGB, transferGB float64, assetDelta int) error
}

// CreateProjectInput carries the customer's project brief.
type CreateProjectInput struct {
	CustomerID string
	Title      string
	Script     string
	Deadline   *time.Time
}

// ListProjectsInput carries the parameters for the list endpoint. ActorID is
// the requesting principal's id; scoping by role is enforced by the service.
type ListProjectsInput struct {
	Role    domain.Role
	ActorID string
	Status  string
	Search  string
	Page    int
	Limit   int
}

// ProjectPage is one page of a project listing.
type ProjectPage struct {
	Items      []*domain.Project
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	// Submit moves the customer's draft into the submitted state.
	Submit(ctx context.Context, projectID, customerID string) (*domain.Project, error)
	// Get retrieves a project the actor is allowed to see: customers their
	// own, videographers their assignments, admins everything.
	Get(ctx context.Context, projectID string, role domain.Role, actorID string) (*domain.Project, error)
	List(ctx context.Context, in ListProjectsInput) (*ProjectPage, error)
	// Assign attaches a videographer to an approved project (admin only).
	Assign(ctx context.Context, projectID, videographerID, adminID string) error
	// SetStatus applies a validated status transition. Videographers may only
	// move their own assignments from in_progress to review.
	SetStatus(ctx context.Context, projectID string, next domain.ProjectStatus, role domain.Role, actorID string) error
}
