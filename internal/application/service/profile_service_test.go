package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parthdesai/billflow/internal/domain/entity"
)

func TestProfileService_UpdateValidatesFields(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})
	ctx := context.Background()

	base := entity.BusinessProfile{
		OwnerID:           "owner-1",
		LegalName:         "Shree Traders",
		RegistrationState: "Gujarat",
		InvoicePrefix:     "ABCD",
	}

	tests := []struct {
		name   string
		mutate func(*entity.BusinessProfile)
		ok     bool
	}{
		{"valid profile", func(*entity.BusinessProfile) {}, true},
		{"valid with gstin and pan", func(p *entity.BusinessProfile) {
			p.GSTIN = "24AAACB1234F1Z5"
			p.PAN = "AAACB1234F"
		}, true},
		{"empty prefix", func(p *entity.BusinessProfile) { p.InvoicePrefix = "" }, false},
		{"lowercase prefix", func(p *entity.BusinessProfile) { p.InvoicePrefix = "abcd" }, false},
		{"prefix too long", func(p *entity.BusinessProfile) { p.InvoicePrefix = "ABCDEFG" }, false},
		{"malformed gstin", func(p *entity.BusinessProfile) { p.GSTIN = "123" }, false},
		{"malformed pan", func(p *entity.BusinessProfile) { p.PAN = "1234567890" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := base
			tt.mutate(&profile)
			err := svc.Update(ctx, &profile)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestProfileService_GetUnknownOwner(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})
	_, err := svc.Get(context.Background(), "stranger")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileService_CreateDefault(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})
	ctx := context.Background()

	profile, err := svc.CreateDefault(ctx, "owner-1", "24AAACB1234F1Z5")
	require.NoError(t, err)
	assert.Equal(t, DefaultInvoicePrefix, profile.InvoicePrefix)

	got, err := svc.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "24AAACB1234F1Z5", got.GSTIN)
}
