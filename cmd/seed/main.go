// Seeds the database with demo accounts and sample data for local
// development. Safe to re-run: existing users are skipped.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/infrastructure/config"
	mongorepo "github.com/northbound/studio-api/internal/infrastructure/db/mongo"
	"github.com/northbound/studio-api/pkg/logger"
)

const demoPassword = "northbound-demo"

type demoAccount struct {
	Email       string
	DisplayName string
	Role        domain.Role
	CompanyName string
}

var demoAccounts = []demoAccount{
	{Email: "customer@example.com", DisplayName: "Casey Customer", Role: domain.RoleCustomer, CompanyName: "Acme Media"},
	{Email: "videographer@example.com", DisplayName: "Vic Videographer", Role: domain.RoleVideographer},
	{Email: "admin@example.com", DisplayName: "Avery Admin", Role: domain.RoleAdmin},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	users := mongorepo.NewUserRepository(db)
	projects := mongorepo.NewProjectRepository(db)
	invoices := mongorepo.NewInvoiceRepository(db)
	usage := mongorepo.NewUsageRepository(db)
	videographers := mongorepo.NewVideographerRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	now := time.Now().UTC()
	ids := make(map[domain.Role]string, len(demoAccounts))

	for _, acc := range demoAccounts {
		user := &domain.User{
			ID:           uuid.NewString(),
			Email:        acc.Email,
			DisplayName:  acc.DisplayName,
			PasswordHash: string(hash),
			Role:         acc.Role,
			CompanyName:  acc.CompanyName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if _, err := users.Create(ctx, user); err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				log.Info().Str("email", acc.Email).Msg("user exists, skipping")
				existing, ferr := users.FindByEmail(ctx, acc.Email)
				if ferr != nil {
					log.Fatal().Err(ferr).Msg("lookup of existing user failed")
				}
				ids[acc.Role] = existing.ID
				continue
			}
			log.Fatal().Err(err).Str("email", acc.Email).Msg("user creation failed")
		}
		ids[acc.Role] = user.ID
		log.Info().Str("email", acc.Email).Str("role", string(acc.Role)).Msg("user created")
	}

	customerID := ids[domain.RoleCustomer]
	videographerID := ids[domain.RoleVideographer]

	profile := &domain.VideographerProfile{
		ID:        videographerID,
		Name:      "Vic Videographer",
		Email:     "videographer@example.com",
		Location:  "Portland, OR",
		GearList:  "Sony FX6, DJI RS 3, Sennheiser MKH 416",
		CreatedAt: now,
	}
	if err := videographers.Insert(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrVideographerExists) {
			log.Info().Str("id", videographerID).Msg("videographer profile exists, skipping")
		} else {
			log.Warn().Err(err).Msg("videographer profile not created")
		}
	} else {
		log.Info().Str("id", videographerID).Msg("videographer profile created")
	}

	deadline := now.AddDate(0, 1, 0)
	project := &domain.Project{
		ID:                     uuid.NewString(),
		Title:                  "Spring product launch video",
		CustomerID:             customerID,
		AssignedVideographerID: videographerID,
		Status:                 domain.ProjectInProgress,
		Script:                 "Open on the workshop floor. Voiceover introduces the new line.",
		ScriptCompleted:        true,
		Deadline:               &deadline,
		CreatedAt:              now.AddDate(0, 0, -14),
		UpdatedAt:              now,
	}
	if err := projects.Create(ctx, project); err != nil {
		log.Warn().Err(err).Msg("sample project not created")
	} else {
		log.Info().Str("id", project.ID).Msg("sample project created")
	}

	invoice := &domain.Invoice{
		ID:         uuid.NewString(),
		Number:     "NB-2026-000001",
		ProjectID:  project.ID,
		CustomerID: customerID,
		AmountUSD:  2400,
		Status:     domain.InvoiceUnpaid,
		IssuedAt:   now.AddDate(0, 0, -7),
		DueAt:      now.AddDate(0, 0, 23),
	}
	if err := invoices.Insert(ctx, invoice); err != nil {
		log.Warn().Err(err).Msg("sample invoice not created")
	} else {
		log.Info().Str("number", invoice.Number).Msg("sample invoice created")
	}

	month := now.Format("2006-01")
	if err := usage.AddMonthly(ctx, customerID, month, 4.2, 1.1, 0.63, 0.099); err != nil {
		log.Warn().Err(err).Msg("sample usage not recorded")
	}
	for i := range 7 {
		sample := &domain.UsageSample{
			ID:              uuid.NewString(),
			UserID:          customerID,
			StorageUsedGB:   3.0 + 0.2*float64(i),
			BandwidthUsedGB: 0.4 + 0.1*float64(i),
			RecordedAt:      now.AddDate(0, 0, i-7),
		}
		if err := usage.InsertSample(ctx, sample); err != nil {
			log.Warn().Err(err).Msg("sample usage reading not recorded")
		}
	}

	log.Info().Msg("seed complete")
}
