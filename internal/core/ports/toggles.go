package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// ToggleRepository defines persistence operations for feature toggles.
type ToggleRepository interface {
	Upsert(ctx context.Context, t *domain.FeatureToggle) error
	FindByName(ctx context.Context, name string) (*domain.FeatureToggle, error)
	List(ctx context.Context) ([]*domain.FeatureToggle, error)
}

// ToggleService defines use-case operations for feature toggles.
type ToggleService interface {
	List(ctx context.Context) ([]*domain.FeatureToggle, error)
	Set(ctx context.Context, name string, enabled bool, adminID string) (*domain.FeatureToggle, error)
}
