package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points         int
		pointsPerLevel int
		expected       int
	}{
		{0, 100, 1},
		{99, 100, 1},
		{100, 100, 2},
		{250, 100, 3},
		{1000, 100, 11},
		{-50, 100, 1},
		{150, 50, 4},
		// Non-positive divisor falls back to 100.
		{500, 0, 6},
		{500, -1, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LevelForPoints(tt.points, tt.pointsPerLevel),
			"points=%d perLevel=%d", tt.points, tt.pointsPerLevel)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleCitizen.Valid())
	assert.True(t, RoleIndustry.Valid())
	assert.True(t, RolePickupAgent.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
}

func TestIndustryTypeValid(t *testing.T) {
	assert.True(t, IndustryChemical.Valid())
	assert.True(t, IndustryOther.Valid())
	assert.False(t, IndustryType("Mining").Valid())
}
