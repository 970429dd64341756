package service

import (
	"context"
	"fmt"
	"time"

	"github.com/parthdesai/billflow/internal/application/port"
	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/utils"
)

// DefaultInvoicePrefix is applied to profiles created at sign-up.
const DefaultInvoicePrefix = "INV"

// ProfileService manages the owner's business profile.
type ProfileService interface {
	Get(ctx context.Context, ownerID string) (*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
	CreateDefault(ctx context.Context, ownerID, gstin string) (*entity.BusinessProfile, error)
}

type profileServiceImpl struct {
	profileRepo port.ProfileRepository
	logger      Logger
	now         func() time.Time
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo port.ProfileRepository, logger Logger) ProfileService {
	return &profileServiceImpl{
		profileRepo: profileRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *profileServiceImpl) Get(ctx context.Context, ownerID string) (*entity.BusinessProfile, error) {
	profile, err := s.profileRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to get profile", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil {
		return nil, ErrNotFound
	}
	return profile, nil
}

// Update validates and saves profile edits. A prefix change affects only
// documents created afterwards; existing documents keep their numbers.
func (s *profileServiceImpl) Update(ctx context.Context, profile *entity.BusinessProfile) error {
	if err := utils.ValidateInvoicePrefix(profile.InvoicePrefix); err != nil {
		return err
	}
	if profile.GSTIN != "" {
		if err := utils.ValidateGSTIN(profile.GSTIN); err != nil {
			return err
		}
	}
	if profile.PAN != "" {
		if err := utils.ValidatePAN(profile.PAN); err != nil {
			return err
		}
	}

	profile.UpdatedAt = s.now()
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		s.logger.Error("Failed to save profile", "error", err, "owner_id", profile.OwnerID)
		return fmt.Errorf("save profile: %w", err)
	}
	s.logger.Info("Profile updated", "owner_id", profile.OwnerID)
	return nil
}

// CreateDefault seeds the profile written at sign-up.
func (s *profileServiceImpl) CreateDefault(ctx context.Context, ownerID, gstin string) (*entity.BusinessProfile, error) {
	profile := &entity.BusinessProfile{
		OwnerID:       ownerID,
		GSTIN:         gstin,
		InvoicePrefix: DefaultInvoicePrefix,
		UpdatedAt:     s.now(),
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		s.logger.Error("Failed to create default profile", "error", err, "owner_id", ownerID)
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}
