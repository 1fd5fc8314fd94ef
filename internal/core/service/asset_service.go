package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type AssetService struct {
	assets   ports.AssetRepository
	projects ports.ProjectRepository
	usage    ports.UsageService
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewAssetService(
	assets ports.AssetRepository,
	projects ports.ProjectRepository,
	usage ports.UsageService,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AssetService {
	return &AssetService{assets: assets, projects: projects, usage: usage, audit: audit, log: log}
}

// Register records asset metadata on a project the actor may access, bumps
// the project's storage totals, and meters the upload against the customer.
func (s *AssetService) Register(ctx context.Context, in ports.RegisterAssetInput) (*domain.Asset, error) {
	if in.Name == "" || in.FileURL == "" || in.SizeGB <= 0 {
		return nil, domain.ErrValidation
	}
	source, err := domain.ParseAssetSource(in.Source)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := authorizeProjectAccess(project, in.Role, in.ActorID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	asset := &domain.Asset{
		ID:         uuid.NewString(),
		ProjectID:  in.ProjectID,
		Name:       in.Name,
		Type:       in.Type,
		FileURL:    in.FileURL,
		SizeGB:     in.SizeGB,
		Source:     source,
		UploadedBy: in.ActorID,
		UploadedAt: now,
	}

	if err := s.assets.Insert(ctx, asset); err != nil {
		s.log.Error().Err(err).Str("project_id", in.ProjectID).Msg("failed to register asset")
		return nil, err
	}
	if err := s.projects.AddUsage(ctx, in.ProjectID, in.SizeGB, in.SizeGB, 1); err != nil {
		s.log.Warn().Err(err).Str("project_id", in.ProjectID).Msg("failed to bump project usage")
	}
	if err := s.usage.AddUsage(ctx, project.CustomerID, in.SizeGB, in.SizeGB, now); err != nil {
		s.log.Warn().Err(err).Str("customer_id", project.CustomerID).Msg("failed to meter upload")
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			EventType: domain.AuditEventStorage,
			Details: map[string]any{
				"action":     "asset_registered",
				"asset_id":   asset.ID,
				"project_id": in.ProjectID,
				"size_gb":    in.SizeGB,
			},
			ActorID:   in.ActorID,
			Timestamp: now,
		})
	}
	return asset, nil
}

// ListForProject returns a project's assets after the same tenant check as a
// single-project read.
func (s *AssetService) ListForProject(ctx context.Context, projectID string, role domain.Role, actorID string) ([]*domain.Asset, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := authorizeProjectAccess(project, role, actorID); err != nil {
		return nil, err
	}
	return s.assets.ListByProject(ctx, projectID)
}

// Remove deletes asset metadata and reverses the project's storage totals.
// The customer's monthly meter is left untouched: it is a consumption log,
// and storage consumed while the asset existed stays billed.
// Routing restricts this to admins.
func (s *AssetService) Remove(ctx context.Context, assetID, adminID string) error {
	asset, err := s.assets.FindByID(ctx, assetID)
	if err != nil {
		return err
	}
	if err := s.assets.Delete(ctx, assetID); err != nil {
		return err
	}
	if err := s.projects.AddUsage(ctx, asset.ProjectID, -asset.SizeGB, 0, -1); err != nil {
		s.log.Warn().Err(err).Str("project_id", asset.ProjectID).Msg("failed to reduce project usage")
	}

	if s.audit != nil {
		s.audit.Record(domain.AuditEvent{
			EventType: domain.AuditEventStorage,
			Details:   map[string]any{"action": "asset_removed", "asset_id": assetID},
			ActorID:   adminID,
			Timestamp: time.Now().UTC(),
		})
	}
	return nil
}
