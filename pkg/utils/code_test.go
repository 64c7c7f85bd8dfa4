package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(6)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, r), "unexpected rune %q", r)
	}
}

func TestGenerateCodeUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateCode(8)] = true
	}
	// Collisions over 36^8 are effectively impossible.
	assert.Len(t, seen, 50)
}

func TestGenerateCodeZeroLength(t *testing.T) {
	assert.Empty(t, GenerateCode(0))
}
