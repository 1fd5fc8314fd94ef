package ports

import (
	"context"

	"github.com/northbound/studio-api/internal/core/domain"
)

// VideographerRepository defines persistence operations for the directory.
type VideographerRepository interface {
	Insert(ctx context.Context, v *domain.VideographerProfile) error
	FindByID(ctx context.Context, id string) (*domain.VideographerProfile, error)
	List(ctx context.Context) ([]*domain.VideographerProfile, error)
	Update(ctx context.Context, v *domain.VideographerProfile) error
}

// UpsertVideographerInput carries directory profile fields. UserID is the
// videographer's account id; it is required on admin Create and ignored on
// UpdateProfile, where the entry is keyed by the caller.
type UpsertVideographerInput struct {
	UserID         string
	Name           string
	Email          string
	Phone          string
	Location       string
	PortfolioURL   string
	Certifications string
	GearList       string
}

// VideographerService defines use-case operations for the directory.
type VideographerService interface {
	Create(ctx context.Context, in UpsertVideographerInput) (*domain.VideographerProfile, error)
	Get(ctx context.Context, id string) (*domain.VideographerProfile, error)
	List(ctx context.Context) ([]*domain.VideographerProfile, error)
	// UpdateProfile lets a videographer maintain their own entry, creating
	// it at their account id when absent.
	UpdateProfile(ctx context.Context, id string, in UpsertVideographerInput) (*domain.VideographerProfile, error)
}
