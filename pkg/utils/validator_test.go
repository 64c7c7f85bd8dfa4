package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
	Slot  string `validate:"omitempty,oneof=morning afternoon evening"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(&sampleRequest{Name: "A", Email: "a@b.co"}))

	err := ValidateStruct(&sampleRequest{Email: "a@b.co"})
	assert.EqualError(t, err, "name is required")

	err = ValidateStruct(&sampleRequest{Name: "A", Email: "nope"})
	assert.EqualError(t, err, "email must be a valid email address")

	err = ValidateStruct(&sampleRequest{Name: "A", Email: "a@b.co", Slot: "midnight"})
	assert.EqualError(t, err, "slot must be one of: morning afternoon evening")
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(45), p.Total)

	// Empty result sets still report one page.
	p = NewPagination(1, 20, 0)
	assert.Equal(t, 1, p.TotalPages)
}
