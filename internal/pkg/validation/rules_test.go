package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCedula(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"1234567890", true},
		{"123456", true},
		{"12345", false},
		{"12345678901", false},
		{"12345a7890", false},
		{"123-456-789", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidCedula(tt.value), "cedula %q", tt.value)
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("3001234567"))
	assert.True(t, IsValidPhone("+573001234567"))
	assert.False(t, IsValidPhone("300-123"))
	assert.False(t, IsValidPhone(""))
}
