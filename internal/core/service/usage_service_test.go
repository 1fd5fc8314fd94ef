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

type monthlyKey struct {
	userID string
	month  string
}

type stubUsageRepo struct {
	monthly      map[monthlyKey]*domain.UsageRecord
	samples      []*domain.UsageSample
	sampleErr    error
	monthlyCalls int
}

func newStubUsageRepo() *stubUsageRepo {
	return &stubUsageRepo{monthly: make(map[monthlyKey]*domain.UsageRecord)}
}

func (r *stubUsageRepo) AddMonthly(_ context.Context, userID, month string, storageGB, transferGB, storageCostUSD, transferCostUSD float64) error {
	r.monthlyCalls++
	key := monthlyKey{userID, month}
	rec, ok := r.monthly[key]
	if !ok {
		rec = &domain.UsageRecord{UserID: userID, Month: month}
		r.monthly[key] = rec
	}
	rec.StorageUsedGB += storageGB
	rec.TransferUsedGB += transferGB
	rec.StorageCostUSD += storageCostUSD
	rec.TransferCostUSD += transferCostUSD
	return nil
}

func (r *stubUsageRepo) InsertSample(_ context.Context, s *domain.UsageSample) error {
	if r.sampleErr != nil {
		return r.sampleErr
	}
	clone := *s
	r.samples = append(r.samples, &clone)
	return nil
}

func (r *stubUsageRepo) ListMonthly(_ context.Context, userID string) ([]*domain.UsageRecord, error) {
	var out []*domain.UsageRecord
	for _, rec := range r.monthly {
		if rec.UserID == userID {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUsageRepo) ListSamples(_ context.Context, userID string, limit int) ([]*domain.UsageSample, error) {
	var out []*domain.UsageSample
	for _, s := range r.samples {
		if s.UserID == userID && len(out) < limit {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubUsageRepo) Totals(_ context.Context) (*ports.UsageTotals, error) {
	totals := &ports.UsageTotals{}
	seen := make(map[string]struct{})
	for _, rec := range r.monthly {
		totals.StorageUsedGB += rec.StorageUsedGB
		totals.TransferUsedGB += rec.TransferUsedGB
		totals.TotalCostUSD += rec.StorageCostUSD + rec.TransferCostUSD
		seen[rec.UserID] = struct{}{}
	}
	totals.Customers = int64(len(seen))
	return totals, nil
}

func TestUsageService_AddUsage_PricesDeltas(t *testing.T) {
	repo := newStubUsageRepo()
	svc := NewUsageService(repo, zerolog.Nop())

	at := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	if err := svc.AddUsage(context.Background(), "c1", 10, 5, at); err != nil {
		t.Fatalf("AddUsage returned error: %v", err)
	}

	rec, ok := repo.monthly[monthlyKey{"c1", "2026-02"}]
	if !ok {
		t.Fatalf("monthly record not created for 2026-02")
	}
	if rec.StorageCostUSD != 1.50 {
		t.Fatalf("10 GB storage should cost 1.50, got %v", rec.StorageCostUSD)
	}
	if rec.TransferCostUSD != 0.45 {
		t.Fatalf("5 GB transfer should cost 0.45, got %v", rec.TransferCostUSD)
	}
	if len(repo.samples) != 1 {
		t.Fatalf("expected one chart sample, got %d", len(repo.samples))
	}
}

func TestUsageService_AddUsage_FoldsIntoSameMonth(t *testing.T) {
	repo := newStubUsageRepo()
	svc := NewUsageService(repo, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_ = svc.AddUsage(ctx, "c1", 1, 0, base)
	_ = svc.AddUsage(ctx, "c1", 2, 0, base.AddDate(0, 0, 20))
	_ = svc.AddUsage(ctx, "c1", 4, 0, base.AddDate(0, 1, 0)) // next month

	march := repo.monthly[monthlyKey{"c1", "2026-03"}]
	if march == nil || march.StorageUsedGB != 3 {
		t.Fatalf("march record should hold 3 GB, got %+v", march)
	}
	april := repo.monthly[monthlyKey{"c1", "2026-04"}]
	if april == nil || april.StorageUsedGB != 4 {
		t.Fatalf("april record should hold 4 GB, got %+v", april)
	}
}

func TestUsageService_AddUsage_SampleFailureIsNotFatal(t *testing.T) {
	repo := newStubUsageRepo()
	repo.sampleErr = errors.New("disk full")
	svc := NewUsageService(repo, zerolog.Nop())

	if err := svc.AddUsage(context.Background(), "c1", 1, 1, time.Now()); err != nil {
		t.Fatalf("sample failures must not fail the metering call: %v", err)
	}
	if repo.monthlyCalls != 1 {
		t.Fatalf("monthly record must still be written")
	}
}

func TestUsageService_AddUsage_RequiresUser(t *testing.T) {
	svc := NewUsageService(newStubUsageRepo(), zerolog.Nop())
	if err := svc.AddUsage(context.Background(), "", 1, 1, time.Now()); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUsageService_History_DefaultsLimit(t *testing.T) {
	repo := newStubUsageRepo()
	svc := NewUsageService(repo, zerolog.Nop())
	ctx := context.Background()

	for range 100 {
		_ = svc.AddUsage(ctx, "c1", 0.1, 0, time.Now())
	}

	samples, err := svc.History(ctx, "c1", 0)
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if len(samples) != defaultHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", defaultHistoryLimit, len(samples))
	}
}
