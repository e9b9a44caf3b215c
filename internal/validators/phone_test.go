package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		name     string
	}{
		{"+380671112233", "+380671112233", "already normalized"},
		{"+380 (67) 111-22-33", "+380671112233", "formatted"},
		{"380 67 111 22 33", "380671112233", "spaces, no plus"},
		{"067-111-22-33", "0671112233", "local with dashes"},
		{"067+111", "067111", "plus not leading is dropped"},
		{"", "", "empty"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NormalizePhone(tc.input))
		})
	}
}

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+380671112233",
		"380671112233",
		"0671112233",
		"+380 (67) 111-22-33",
		"123456789", // 9 digits, lower bound
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), p)
	}

	invalid := []string{
		"",
		"12345678",          // 8 digits
		"1234567890123456",  // 16 digits
		"+",                 // no digits at all
		"phone number here", // no digits
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), p)
	}
}
