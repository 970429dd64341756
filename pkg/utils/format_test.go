package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
		{"99999", "99,999.00"},
		{"100000", "1,00,000.00"},
		{"1234567.5", "12,34,567.50"},
		{"12345678", "1,23,45,678.00"},
		{"1534", "1,534.00"},
		{"-100000", "-1,00,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "01-06-2024", FormatDate(d))
}
