package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "Secret124"))
	assert.False(t, CheckPassword("not-a-hash", "Secret123"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Secret123", true},
		{"Aa1bcdef", true},
		{"short1A", false},       // under 8 chars
		{"alllowercase1", false}, // no uppercase
		{"ALLUPPERCASE1", false}, // no lowercase
		{"NoNumbersHere", false},
	}

	for _, tt := range tests {
		err := ValidatePassword(tt.password)
		if tt.valid {
			assert.NoError(t, err, "password %q", tt.password)
		} else {
			assert.Error(t, err, "password %q", tt.password)
		}
	}
}
