package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

// Per-GB pricing applied when metering consumption.
const (
	storageRateUSDPerGB  = 0.15
	transferRateUSDPerGB = 0.09
)

const defaultHistoryLimit = 90

type UsageService struct {
	repo ports.UsageRepository
	log  zerolog.Logger
}

func NewUsageService(repo ports.UsageRepository, log zerolog.Logger) *UsageService {
	return &UsageService{repo: repo, log: log}
}

// AddUsage folds consumption deltas into the customer's record for the month
// containing at, pricing them at the platform rates, and appends a sample for
// the usage charts.
func (s *UsageService) AddUsage(ctx context.Context, userID string, storageGB, transferGB float64, at time.Time) error {
	if userID == "" {
		return domain.ErrValidation
	}

	month := at.UTC().Format("2006-01")
	storageCost := round2(storageGB * storageRateUSDPerGB)
	transferCost := round2(transferGB * transferRateUSDPerGB)

	if err := s.repo.AddMonthly(ctx, userID, month, storageGB, transferGB, storageCost, transferCost); err != nil {
		return err
	}

	sample := &domain.UsageSample{
		ID:              uuid.NewString(),
		UserID:          userID,
		StorageUsedGB:   storageGB,
		BandwidthUsedGB: transferGB,
		RecordedAt:      at.UTC(),
	}
	if err := s.repo.InsertSample(ctx, sample); err != nil {
		// The monthly record is authoritative; a lost sample only degrades
		// chart resolution.
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to insert usage sample")
	}
	return nil
}

// Summary returns the customer's monthly usage records.
func (s *UsageService) Summary(ctx context.Context, userID string) ([]*domain.UsageRecord, error) {
	return s.repo.ListMonthly(ctx, userID)
}

// History returns the customer's most recent usage samples.
func (s *UsageService) History(ctx context.Context, userID string, limit int) ([]*domain.UsageSample, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListSamples(ctx, userID, limit)
}

// Totals returns the platform-wide aggregate for the admin dashboard.
func (s *UsageService) Totals(ctx context.Context) (*ports.UsageTotals, error) {
	return s.repo.Totals(ctx)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
