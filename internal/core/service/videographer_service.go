package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/northbound/studio-api/internal/core/domain"
	"github.com/northbound/studio-api/internal/core/ports"
)

type VideographerService struct {
	repo ports.VideographerRepository
	log  zerolog.Logger
}

func NewVideographerService(repo ports.VideographerRepository, log zerolog.Logger) *VideographerService {
	return &VideographerService{repo: repo, log: log}
}

// Create adds a directory entry (admin operation). The entry is keyed by the
// videographer's account id so the videographer can reach it as their own
// profile and project assignment can reference it directly.
func (s *VideographerService) Create(ctx context.Context, in ports.UpsertVideographerInput) (*domain.VideographerProfile, error) {
	if in.UserID == "" || in.Name == "" || in.Email == "" {
		return nil, domain.ErrValidation
	}
	if _, err := s.repo.FindByID(ctx, in.UserID); err == nil {
		return nil, domain.ErrVideographerExists
	} else if !errors.Is(err, domain.ErrVideographerNotFound) {
		return nil, err
	}

	profile := &domain.VideographerProfile{
		ID:             in.UserID,
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Location:       in.Location,
		PortfolioURL:   in.PortfolioURL,
		Certifications: in.Certifications,
		GearList:       in.GearList,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, profile); err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create videographer profile")
		return nil, err
	}
	return profile, nil
}

func (s *VideographerService) Get(ctx context.Context, id string) (*domain.VideographerProfile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *VideographerService) List(ctx context.Context) ([]*domain.VideographerProfile, error) {
	return s.repo.List(ctx)
}

// UpdateProfile replaces the mutable profile fields, creating the entry at
// the caller's account id when none exists yet. Name and email are required;
// the rest may be cleared.
func (s *VideographerService) UpdateProfile(ctx context.Context, id string, in ports.UpsertVideographerInput) (*domain.VideographerProfile, error) {
	if id == "" || in.Name == "" || in.Email == "" {
		return nil, domain.ErrValidation
	}

	profile, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, domain.ErrVideographerNotFound) {
		profile = &domain.VideographerProfile{ID: id, CreatedAt: time.Now().UTC()}
		profile.Name = in.Name
		profile.Email = in.Email
		profile.Phone = in.Phone
		profile.Location = in.Location
		profile.PortfolioURL = in.PortfolioURL
		profile.Certifications = in.Certifications
		profile.GearList = in.GearList
		if err := s.repo.Insert(ctx, profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	if err != nil {
		return nil, err
	}

	profile.Name = in.Name
	profile.Email = in.Email
	profile.Phone = in.Phone
	profile.Location = in.Location
	profile.PortfolioURL = in.PortfolioURL
	profile.Certifications = in.Certifications
	profile.GearList = in.GearList

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
