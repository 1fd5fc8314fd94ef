package ports

import (
	"context"
	"time"

	"github.com/northbound/studio-api/internal/core/domain"
)

// UsageTotals is the platform-wide aggregate shown on the admin dashboard.
type UsageTotals struct {
	StorageUsedGB  float64
	TransferUsedGB float64
	TotalCostUSD   float64
	Customers      int64
}

// UsageRepository defines persistence operations for metered usage.
type UsageRepository interface {
	// AddMonthly folds deltas into the customer's record for month,
	// creating it when absent.
	AddMonthly(ctx context.Context, userID, month string, storageGB, transferGB, storageCostUSD, transferCostUSD float64) error
	InsertSample(ctx context.Context, s *domain.UsageSample) error
	ListMonthly(ctx context.Context, userID string) ([]*domain.UsageRecord, error)
	ListSamples(ctx context.Context, userID string, limit int) ([]*domain.UsageSample, error)
	Totals(ctx context.Context) (*UsageTotals, error)
}

// UsageService defines use-case operations for metered usage.
type UsageService interface {
	// AddUsage records consumption deltas for a customer at the given time,
	// pricing them into the month's running cost.
	AddUsage(ctx context.Context, userID string, storageGB, transferGB float64, at time.Time) error
	Summary(ctx context.Context, userID string) ([]*domain.UsageRecord, error)
	History(ctx context.Context, userID string, limit int) ([]*domain.UsageSample, error)
	Totals(ctx context.Context) (*UsageTotals, error)
}
