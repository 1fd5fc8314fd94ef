package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// AuditRecorder accepts audit events for asynchronous persistence. Record
// never blocks; events beyond the dispatcher's buffer capacity are dropped.
// Events for the same actor are persisted in submission order.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditFilter carries query parameters for the system log listing.
type AuditFilter struct {
	EventType string
	ActorID   string
	Page      int
	Limit     int
}

// AuditPage is one page of system log entries.
type AuditPage struct {
	Items      []*domain.AuditEvent
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// AuditRepository defines persistence operations for system logs.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	List(ctx context.Context, filter AuditFilter) ([]*domain.AuditEvent, int64, error)
}

// AuditService persists queued audit events and serves the admin listing.
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
	List(ctx context.Context, filter AuditFilter) (*AuditPage, error)
}
