package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("owner@example.com"))
	assert.NoError(t, ValidateEmail("a.b+c@sub.example.co.in"))
	assert.Error(t, ValidateEmail("owner@"))
	assert.Error(t, ValidateEmail("owner example.com"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		gstin string
		ok    bool
	}{
		{"24AAACB1234F1Z5", true},
		{"08AAACM1234F1Z5", true},
		{"27AAPFU0939F1ZV", true},
		{"24AAACB1234F1Y5", false}, // 14th char must be Z
		{"4AAACB1234F1Z5", false},  // too short
		{"24aaacb1234f1z5", false}, // lowercase
		{"", false},
	}
	for _, tt := range tests {
		err := ValidateGSTIN(tt.gstin)
		if tt.ok {
			assert.NoError(t, err, tt.gstin)
		} else {
			assert.Error(t, err, tt.gstin)
		}
	}
}

func TestValidatePAN(t *testing.T) {
	assert.NoError(t, ValidatePAN("AAACB1234F"))
	assert.Error(t, ValidatePAN("AAACB1234"))
	assert.Error(t, ValidatePAN("1234AAACBF"))
	assert.Error(t, ValidatePAN("aaacb1234f"))
}

func TestValidateInvoicePrefix(t *testing.T) {
	assert.NoError(t, ValidateInvoicePrefix("A"))
	assert.NoError(t, ValidateInvoicePrefix("INV"))
	assert.NoError(t, ValidateInvoicePrefix("AB12CD"))
	assert.Error(t, ValidateInvoicePrefix(""))
	assert.Error(t, ValidateInvoicePrefix("abc"))
	assert.Error(t, ValidateInvoicePrefix("TOOLONG"))
	assert.Error(t, ValidateInvoicePrefix("IN-V"))
}
