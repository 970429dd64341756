package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/parthdesai/billflow/internal/domain/entity"
	"github.com/parthdesai/billflow/pkg/database"
)

// ProfileRepository handles business profile database operations
type ProfileRepository struct {
	db     *database.DB
	logger *zap.Logger
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.DB, logger *zap.Logger) *ProfileRepository {
	return &ProfileRepository{db: db, logger: logger}
}

// GetByOwner retrieves the owner's profile, or (nil, nil) if none exists.
func (r *ProfileRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.BusinessProfile, error) {
	query := `
		SELECT owner_id, legal_name, registration_state, gstin, pan,
			bank_details, invoice_prefix, updated_at
		FROM business_profiles
		WHERE owner_id = ?
	`
	var profile entity.BusinessProfile
	err := r.db.QueryRowContext(ctx, query, ownerID).Scan(
		&profile.OwnerID,
		&profile.LegalName,
		&profile.RegistrationState,
		&profile.GSTIN,
		&profile.PAN,
		&profile.BankDetails,
		&profile.InvoicePrefix,
		&profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get profile", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Save inserts or replaces the owner's profile.
func (r *ProfileRepository) Save(ctx context.Context, profile *entity.BusinessProfile) error {
	query := `
		INSERT INTO business_profiles (
			owner_id, legal_name, registration_state, gstin, pan,
			bank_details, invoice_prefix, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			legal_name = excluded.legal_name,
			registration_state = excluded.registration_state,
			gstin = excluded.gstin,
			pan = excluded.pan,
			bank_details = excluded.bank_details,
			invoice_prefix = excluded.invoice_prefix,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		profile.OwnerID,
		profile.LegalName,
		profile.RegistrationState,
		profile.GSTIN,
		profile.PAN,
		profile.BankDetails,
		profile.InvoicePrefix,
		profile.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save profile", zap.Error(err), zap.String("owner_id", profile.OwnerID))
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
