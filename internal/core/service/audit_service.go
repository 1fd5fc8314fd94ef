package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService backed by the system log repository.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Process persists a single queued audit event. Called by dispatcher workers.
func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.EventType == "" {
		event.EventType = domain.AuditEventSystem
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("persist audit event: %w", err)
	}

	s.log.Debug().
		Str("event_type", string(event.EventType)).
		Str("actor_id", event.ActorID).
		Msg("audit event persisted")
	return nil
}

// List returns a page of system log entries for the admin dashboard.
func (s *auditService) List(ctx context.Context, filter ports.AuditFilter) (*ports.AuditPage, error) {
	filter.Page = normalizePage(filter.Page)
	filter.Limit = normalizeLimit(filter.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.AuditPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}
