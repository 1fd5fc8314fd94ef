package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type stubAssetRepo struct {
	assets map[string]*domain.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{assets: make(map[string]*domain.Asset)}
}

func (r *stubAssetRepo) Insert(_ context.Context, a *domain.Asset) error {
	clone := *a
	r.assets[a.ID] = &clone
	return nil
}

func (r *stubAssetRepo) FindByID(_ context.Context, id string) (*domain.Asset, error) {
	a, ok := r.assets[id]
	if !ok {
		return nil, domain.ErrAssetNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssetRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Asset, error) {
	var items []*domain.Asset
	for _, a := range r.assets {
		if a.ProjectID == projectID {
			clone := *a
			items = append(items, &clone)
		}
	}
	return items, nil
}

func (r *stubAssetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.assets[id]; !ok {
		return domain.ErrAssetNotFound
	}
	delete(r.assets, id)
	return nil
}

type meterCall struct {
	userID     string
	storageGB  float64
	transferGB float64
}

type recordingUsageService struct {
	calls []meterCall
}

func (s *recordingUsageService) AddUsage(_ context.Context, userID string, storageGB, transferGB float64, _ time.Time) error {
	s.calls = append(s.calls, meterCall{userID: userID, storageGB: storageGB, transferGB: transferGB})
	return nil
}

func (s *recordingUsageService) Summary(_ context.Context, _ string) ([]*domain.UsageRecord, error) {
	return nil, nil
}

func (s *recordingUsageService) History(_ context.Context, _ string, _ int) ([]*domain.UsageSample, error) {
	return nil, nil
}

func (s *recordingUsageService) Totals(_ context.Context) (*ports.UsageTotals, error) {
	return &ports.UsageTotals{}, nil
}

func seedAssetProject(repo *stubProjectRepo) *domain.Project {
	p := &domain.Project{
		ID:         "proj-1",
		Title:      "Launch teaser",
		CustomerID: "cust-1",
		Status:     domain.ProjectInProgress,
		CreatedAt:  time.Now().UTC(),
	}
	repo.projects[p.ID] = p
	return p
}

func TestAssetService_RegisterMetersCustomer(t *testing.T) {
	projects := newStubProjectRepo()
	seedAssetProject(projects)
	usage := &recordingUsageService{}
	svc := NewAssetService(newStubAssetRepo(), projects, usage, nil, zerolog.Nop())

	asset, err := svc.Register(context.Background(), ports.RegisterAssetInput{
		ProjectID: "proj-1",
		Name:      "teaser_cut.mp4",
		Type:      "video",
		FileURL:   "https://cdn.example.com/teaser_cut.mp4",
		SizeGB:    2.5,
		Source:    string(domain.AssetSourceCustomer),
		Role:      domain.RoleCustomer,
		ActorID:   "cust-1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if asset.UploadedBy != "cust-1" {
		t.Errorf("UploadedBy = %q, want %q", asset.UploadedBy, "cust-1")
	}

	project, _ := projects.FindByID(context.Background(), "proj-1")
	if project.StorageUsedGB != 2.5 || project.AssetsCount != 1 {
		t.Errorf("project totals = (%v, %d), want (2.5, 1)", project.StorageUsedGB, project.AssetsCount)
	}
	if len(usage.calls) != 1 {
		t.Fatalf("meter calls = %d, want 1", len(usage.calls))
	}
	if c := usage.calls[0]; c.userID != "cust-1" || c.storageGB != 2.5 || c.transferGB != 2.5 {
		t.Errorf("meter call = %+v, want cust-1 / 2.5 / 2.5", c)
	}
}

func TestAssetService_Register_ForeignProjectForbidden(t *testing.T) {
	projects := newStubProjectRepo()
	seedAssetProject(projects)
	svc := NewAssetService(newStubAssetRepo(), projects, &recordingUsageService{}, nil, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterAssetInput{
		ProjectID: "proj-1",
		Name:      "rogue.mp4",
		Type:      "video",
		FileURL:   "https://cdn.example.com/rogue.mp4",
		SizeGB:    1,
		Source:    string(domain.AssetSourceCustomer),
		Role:      domain.RoleCustomer,
		ActorID:   "cust-other",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Register on foreign project: err = %v, want ErrForbidden", err)
	}
}

func TestAssetService_RemoveKeepsMonthlyMeter(t *testing.T) {
	projects := newStubProjectRepo()
	seedAssetProject(projects)
	usage := &recordingUsageService{}
	svc := NewAssetService(newStubAssetRepo(), projects, usage, nil, zerolog.Nop())

	asset, err := svc.Register(context.Background(), ports.RegisterAssetInput{
		ProjectID: "proj-1",
		Name:      "broll.mov",
		Type:      "video",
		FileURL:   "https://cdn.example.com/broll.mov",
		SizeGB:    4,
		Source:    string(domain.AssetSourceStudio),
		Role:      domain.RoleAdmin,
		ActorID:   "admin-1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := svc.Remove(context.Background(), asset.ID, "admin-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	// Project totals reflect current state and are reversed.
	project, _ := projects.FindByID(context.Background(), "proj-1")
	if project.StorageUsedGB != 0 || project.AssetsCount != 0 {
		t.Errorf("project totals after remove = (%v, %d), want (0, 0)", project.StorageUsedGB, project.AssetsCount)
	}

	// The monthly meter is a consumption log; removal never credits it back.
	if len(usage.calls) != 1 {
		t.Fatalf("meter calls after remove = %d, want 1", len(usage.calls))
	}
	if usage.calls[0].storageGB < 0 || usage.calls[0].transferGB < 0 {
		t.Errorf("meter received a negative delta: %+v", usage.calls[0])
	}

	if err := svc.Remove(context.Background(), asset.ID, "admin-1"); !errors.Is(err, domain.ErrAssetNotFound) {
		t.Fatalf("second Remove: err = %v, want ErrAssetNotFound", err)
	}
}
