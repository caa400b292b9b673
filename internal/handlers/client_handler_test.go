package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	// Register, login, create and email updates all pass addresses through
	// this, so A@x.com and a@x.com land on the same document and the same
	// unique index entry.
	assert.Equal(t, "a@x.com", normalizeEmail("A@x.com"))
	assert.Equal(t, "a@x.com", normalizeEmail("a@X.COM"))
	assert.Equal(t, "a@x.com", normalizeEmail("a@x.com"))
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"01012345678", "01112345678", "01212345678", "01512345678"}
	for _, p := range valid {
		assert.True(t, phonePattern.MatchString(p), p)
	}

	invalid := []string{
		"0101234567",    // too short
		"010123456789",  // too long
		"01312345678",   // carrier prefix not allocated
		"02012345678",   // landline prefix
		"+201012345678", // international form not accepted
		"01o12345678",
	}
	for _, p := range invalid {
		assert.False(t, phonePattern.MatchString(p), p)
	}
}
