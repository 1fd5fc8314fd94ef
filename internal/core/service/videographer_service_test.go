package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type stubVideographerRepo struct {
	profiles map[string]*domain.VideographerProfile
}

func newStubVideographerRepo() *stubVideographerRepo {
	return &stubVideographerRepo{profiles: make(map[string]*domain.VideographerProfile)}
}

func (r *stubVideographerRepo) Insert(_ context.Context, v *domain.VideographerProfile) error {
	if _, ok := r.profiles[v.ID]; ok {
		return domain.ErrVideographerExists
	}
	clone := *v
	r.profiles[v.ID] = &clone
	return nil
}

func (r *stubVideographerRepo) FindByID(_ context.Context, id string) (*domain.VideographerProfile, error) {
	v, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrVideographerNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVideographerRepo) List(_ context.Context) ([]*domain.VideographerProfile, error) {
	var items []*domain.VideographerProfile
	for _, v := range r.profiles {
		clone := *v
		items = append(items, &clone)
	}
	return items, nil
}

func (r *stubVideographerRepo) Update(_ context.Context, v *domain.VideographerProfile) error {
	if _, ok := r.profiles[v.ID]; !ok {
		return domain.ErrVideographerNotFound
	}
	clone := *v
	r.profiles[v.ID] = &clone
	return nil
}

func TestVideographerService_CreateKeyedByAccount(t *testing.T) {
	svc := NewVideographerService(newStubVideographerRepo(), zerolog.Nop())
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.UpsertVideographerInput{
		UserID: "account-1",
		Name:   "Vic Videographer",
		Email:  "vic@example.com",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != "account-1" {
		t.Fatalf("entry keyed by %q, want the account id", created.ID)
	}

	// The videographer reaches the entry with nothing but their account id.
	got, err := svc.Get(ctx, "account-1")
	if err != nil {
		t.Fatalf("Get by account id: %v", err)
	}
	if got.Name != "Vic Videographer" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestVideographerService_Create_Validation(t *testing.T) {
	svc := NewVideographerService(newStubVideographerRepo(), zerolog.Nop())
	ctx := context.Background()

	cases := []ports.UpsertVideographerInput{
		{Name: "Vic", Email: "vic@example.com"},
		{UserID: "account-1", Email: "vic@example.com"},
		{UserID: "account-1", Name: "Vic"},
	}
	for _, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("input %+v: expected ErrValidation, got %v", in, err)
		}
	}
}

func TestVideographerService_Create_Duplicate(t *testing.T) {
	svc := NewVideographerService(newStubVideographerRepo(), zerolog.Nop())
	ctx := context.Background()

	in := ports.UpsertVideographerInput{UserID: "account-1", Name: "Vic", Email: "vic@example.com"}
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(ctx, in); !errors.Is(err, domain.ErrVideographerExists) {
		t.Fatalf("expected ErrVideographerExists, got %v", err)
	}
}

func TestVideographerService_OwnProfileUpsert(t *testing.T) {
	repo := newStubVideographerRepo()
	svc := NewVideographerService(repo, zerolog.Nop())
	ctx := context.Background()

	// No admin has created an entry yet: the videographer's first profile
	// save creates one at their account id.
	profile, err := svc.UpdateProfile(ctx, "account-7", ports.UpsertVideographerInput{
		Name:     "Vic Videographer",
		Email:    "vic@example.com",
		Location: "Portland, OR",
	})
	if err != nil {
		t.Fatalf("UpdateProfile on empty directory: %v", err)
	}
	if profile.ID != "account-7" {
		t.Fatalf("entry keyed by %q, want the account id", profile.ID)
	}

	// A later save replaces the mutable fields in place.
	updated, err := svc.UpdateProfile(ctx, "account-7", ports.UpsertVideographerInput{
		Name:     "Vic Videographer",
		Email:    "vic@example.com",
		Location: "Seattle, WA",
		GearList: "Sony FX6",
	})
	if err != nil {
		t.Fatalf("second UpdateProfile: %v", err)
	}
	if updated.Location != "Seattle, WA" || updated.GearList != "Sony FX6" {
		t.Fatalf("fields not replaced: %+v", updated)
	}

	got, err := svc.Get(ctx, "account-7")
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if got.Location != "Seattle, WA" {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestVideographerService_UpdateProfile_Validation(t *testing.T) {
	svc := NewVideographerService(newStubVideographerRepo(), zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.UpdateProfile(ctx, "", ports.UpsertVideographerInput{Name: "Vic", Email: "vic@example.com"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty id: expected ErrValidation, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, "account-1", ports.UpsertVideographerInput{Email: "vic@example.com"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("missing name: expected ErrValidation, got %v", err)
	}
}
