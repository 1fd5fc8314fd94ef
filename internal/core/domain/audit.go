package domain

import "time"

// AuditEventType groups system log entries for dashboard filtering.
type AuditEventType string

const (
	AuditEventAuth    AuditEventType = "auth"
	AuditEventStorage AuditEventType = "storage"
	AuditEventBilling AuditEventType = "billing"
	AuditEventSystem  AuditEventType = "system"
)

// AuditEvent is one system log entry. ActorID is the id of the principal that
// caused the event; empty for system-originated events.
type AuditEvent struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	EventType AuditEventType `json:"event_type" bson:"event_type"`
	Details   map[string]any `json:"details" bson:"details"`
	ActorID   string         `json:"actor_id,omitempty" bson:"actor_id,omitempty"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
