package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// AssetRepository defines persistence operations for asset metadata.
type AssetRepository interface {
	Insert(ctx context.Context, a *domain.Asset) error
	FindByID(ctx context.Context, id string) (*domain.Asset, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Asset, error)
	Delete(ctx context.Context, id string) error
}

// RegisterAssetInput carries the metadata of an uploaded file.
type RegisterAssetInput struct {
	ProjectID string
	Name      string
	Type      string
	FileURL   string
	SizeGB    float64
	Source    string
	Role      domain.Role
	ActorID   string
}

// AssetService defines use-case operations for assets.
type AssetService interface {
	// Register records asset metadata on a project the actor may access and
	// folds the size into the project's and customer's usage totals.
	Register(ctx context.Context, in RegisterAssetInput) (*domain.Asset, error)
	ListForProject(ctx context.Context, projectID string, role domain.Role, actorID string) ([]*domain.Asset, error)
	// Remove deletes asset metadata (admin only by routing).
	Remove(ctx context.Context, assetID, adminID string) error
}
