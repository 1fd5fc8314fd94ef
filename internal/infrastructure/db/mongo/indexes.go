package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the indexes for every collection. Called once at
// startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexer{
		"users":         NewUserRepository(db),
		"projects":      NewProjectRepository(db),
		"assets":        NewAssetRepository(db),
		"invoices":      NewInvoiceRepository(db),
		"payouts":       NewPayoutRepository(db),
		"tickets":       NewTicketRepository(db),
		"usage":         NewUsageRepository(db),
		"videographers": NewVideographerRepository(db),
		"toggles":       NewToggleRepository(db),
		"system_logs":   NewAuditRepository(db),
	}

	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", name, err)
		}
	}
	return nil
}
