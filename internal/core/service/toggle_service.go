package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type ToggleService struct {
	repo  ports.ToggleRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewToggleService(repo ports.ToggleRepository, audit ports.AuditRecorder, log zerolog.Logger) *ToggleService {
	return &ToggleService{repo: repo, audit: audit, log: log}
}

func (s *ToggleService) List(ctx context.Context) ([]*domain.FeatureToggle, error) {
	return s.repo.List(ctx)
}

// Set flips a feature toggle, creating it when absent.
func (s *ToggleService) Set(ctx context.Context, name string, enabled bool, adminID string) (*domain.FeatureToggle, error) {
	if name == "" {
		return nil, domain.ErrValidation
	}

	toggle := &domain.FeatureToggle{
		ID:        uuid.NewString(),
		Name:      name,
		Enabled:   enabled,
		UpdatedAt: time.Now().UTC(),
	}
	if existing, err := s.repo.FindByName(ctx, name); err == nil {
		toggle.ID = existing.ID
	}

	if err := s.repo.Upsert(ctx, toggle); err != nil {
		s.log.Error().Err(err).Str("feature", name).Msg("failed to set feature toggle")
		return nil, err
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			EventType: domain.AuditEventSystem,
			Details:   map[string]any{"action": "feature_toggled", "feature": name, "enabled": enabled},
			ActorID:   adminID,
			Timestamp: toggle.UpdatedAt,
		})
	}
	return toggle, nil
}
