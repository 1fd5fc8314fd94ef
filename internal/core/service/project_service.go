package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

const maxPageSize = 100

type ProjectService struct {
	repo  ports.ProjectRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, audit: audit, log: log}
}

// Create opens a draft project from the customer's brief.
func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.CustomerID == "" || in.Title == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now().UTC()
	project := &domain.Project{
		ID:              uuid.NewString(),
		Title:           in.Title,
		CustomerID:      in.CustomerID,
		Status:          domain.ProjectDraft,
		Script:          in.Script,
		ScriptCompleted: in.Script != "",
		Deadline:        in.Deadline,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		s.log.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Str("project_id", project.ID).Str("customer_id", in.CustomerID).Msg("project created")
	s.record(in.CustomerID, map[string]any{"action": "project_created", "project_id": project.ID})
	return project, nil
}

// Submit moves the customer's own draft into the submitted state.
func (s *ProjectService) Submit(ctx context.Context, projectID, customerID string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	if !project.Status.CanTransitionTo(domain.ProjectSubmitted) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateStatus(ctx, projectID, domain.ProjectSubmitted, now); err != nil {
		return nil, err
	}
	project.Status = domain.ProjectSubmitted
	project.UpdatedAt = now

	s.record(customerID, map[string]any{"action": "project_submitted", "project_id": projectID})
	return project, nil
}

// Get retrieves a project the actor is allowed to see.
func (s *ProjectService) Get(ctx context.Context, projectID string, role domain.Role, actorID string) (*domain.Project, error) {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := authorizeProjectAccess(project, role, actorID); err != nil {
		return nil, err
	}
	return project, nil
}

// List returns a role-scoped page of projects.
func (s *ProjectService) List(ctx context.Context, in ports.ListProjectsInput) (*ports.ProjectPage, error) {
	filter := ports.ProjectFilter{
		Status: in.Status,
		Search: in.Search,
		Page:   normalizePage(in.Page),
		Limit:  normalizeLimit(in.Limit),
	}
	switch in.Role {
	case domain.RoleCustomer:
		filter.CustomerID = in.ActorID
	case domain.RoleVideographer:
		filter.VideographerID = in.ActorID
	case domain.RoleAdmin:
		// unscoped
	default:
		return nil, domain.ErrForbidden
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.ProjectPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Assign attaches a videographer to a project and opens production. Only
// approved projects can be assigned.
func (s *ProjectService) Assign(ctx context.Context, projectID, videographerID, adminID string) error {
	if videographerID == "" {
		return domain.ErrValidation
	}
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}
	if project.Status != domain.ProjectApproved {
		return domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if err := s.repo.AssignVideographer(ctx, projectID, videographerID, now); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, projectID, domain.ProjectInProgress, now); err != nil {
		return err
	}

	s.record(adminID, map[string]any{
		"action":          "project_assigned",
		"project_id":      projectID,
		"videographer_id": videographerID,
	})
	return nil
}

// SetStatus applies a validated status transition. Admins may apply any valid
// transition; videographers may only move their own assignment from
// in_progress to review.
func (s *ProjectService) SetStatus(ctx context.Context, projectID string, next domain.ProjectStatus, role domain.Role, actorID string) error {
	project, err := s.repo.FindByID(ctx, projectID)
	if err != nil {
		return err
	}

	switch role {
	case domain.RoleAdmin:
		// full transition authority
	case domain.RoleVideographer:
		if project.AssignedVideographerID != actorID {
			return domain.ErrForbidden
		}
		if project.Status != domain.ProjectInProgress || next != domain.ProjectReview {
			return domain.ErrForbidden
		}
	default:
		return domain.ErrForbidden
	}

	if !project.Status.CanTransitionTo(next) {
		return domain.ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, projectID, next, time.Now().UTC()); err != nil {
		return err
	}

	s.record(actorID, map[string]any{
		"action":     "project_status_changed",
		"project_id": projectID,
		"from":       string(project.Status),
		"to":         string(next),
	})
	return nil
}

func (s *ProjectService) record(actorID string, details map[string]any) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		EventType: domain.AuditEventSystem,
		Details:   details,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	})
}

// authorizeProjectAccess enforces tenant scoping on single-project reads.
func authorizeProjectAccess(p *domain.Project, role domain.Role, actorID string) error {
	switch role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleCustomer:
		if p.CustomerID == actorID {
			return nil
		}
	case domain.RoleVideographer:
		if p.AssignedVideographerID == actorID {
			return nil
		}
	}
	return domain.ErrForbidden
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return 20
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
