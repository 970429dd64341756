package utils

import (
	"fmt"
	"regexp"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	gstinRegex  = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panRegex    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	prefixRegex = regexp.MustCompile(`^[A-Z0-9]{1,6}$`)
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format: %s", email)
	}
	return nil
}

// ValidateGSTIN validates a 15-character GST identification number: a
// two-digit state code, the holder's PAN, an entity code, the literal Z and
// a check character.
func ValidateGSTIN(gstin string) error {
	if !gstinRegex.MatchString(gstin) {
		return fmt.Errorf("invalid GSTIN: %s", gstin)
	}
	return nil
}

// ValidatePAN validates a 10-character permanent account number
func ValidatePAN(pan string) error {
	if !panRegex.MatchString(pan) {
		return fmt.Errorf("invalid PAN: %s", pan)
	}
	return nil
}

// ValidateInvoicePrefix validates a document number prefix: one to six
// uppercase alphanumeric characters.
func ValidateInvoicePrefix(prefix string) error {
	if !prefixRegex.MatchString(prefix) {
		return fmt.Errorf("invoice prefix must be 1-6 uppercase letters or digits: %q", prefix)
	}
	return nil
}
