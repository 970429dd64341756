package entity

import "time"

// BusinessProfile holds the seller-side identity printed on every document.
// Created with defaults at sign-up and edited afterwards; it is never deleted
// independently of its account.
type BusinessProfile struct {
	OwnerID           string    `json:"owner_id"`
	LegalName         string    `json:"legal_name"`
	RegistrationState string    `json:"registration_state"`
	GSTIN             string    `json:"gstin,omitempty"`
	PAN               string    `json:"pan,omitempty"`
	BankDetails       string    `json:"bank_details,omitempty"`
	InvoicePrefix     string    `json:"invoice_prefix"` // 1-6 uppercase alphanumerics
	UpdatedAt         time.Time `json:"updated_at"`
}

// User is an authenticated account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is an opaque bearer token with an expiry.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
