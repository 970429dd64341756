package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextDocumentNumber(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		count    int64
		expected string
	}{
		{"first document", "ABCD", 0, "ABCD-5970"},
		{"sixth document", "ABCD", 5, "ABCD-5975"},
		{"single char prefix", "A", 0, "A-5970"},
		{"six char prefix", "INV001", 29, "INV001-5999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextDocumentNumber(tt.prefix, tt.count))
		})
	}
}

func TestNextDocumentNumber_SequencePerCount(t *testing.T) {
	// Consecutive counts yield consecutive numbers for the same prefix.
	assert.Equal(t, "GST-5970", NextDocumentNumber("GST", 0))
	assert.Equal(t, "GST-5971", NextDocumentNumber("GST", 1))
	assert.Equal(t, "GST-5972", NextDocumentNumber("GST", 2))
}
