package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", SanitizeString("<b>bold</b>"))
}

func TestSanitizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", SanitizeEmail("  User@Example.COM  "))
	assert.Equal(t, "user@example.com", SanitizeEmail("<script>user@example.com"))
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "+91 (80) 1234-5678", SanitizePhone("+91 (80) 1234-5678"))
	assert.Equal(t, "9876543210", SanitizePhone("abc9876543210xyz"))
}

func TestValidateAndSanitizeEmail(t *testing.T) {
	email, err := ValidateAndSanitizeEmail(" Valid@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "valid@example.com", email)

	_, err = ValidateAndSanitizeEmail("not-an-email")
	assert.Error(t, err)
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("a@b.co"))
	assert.False(t, IsValidEmail("a@b"))
	assert.False(t, IsValidEmail(""))
}
