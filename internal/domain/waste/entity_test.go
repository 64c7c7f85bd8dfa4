package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegregationRate(t *testing.T) {
	tests := []struct {
		name     string
		stats    Stats
		expected string
	}{
		{"empty history", Stats{}, "0%"},
		{"eight of ten", Stats{TotalClassifications: 10, ProperlySegregated: 8}, "80%"},
		{"all segregated", Stats{TotalClassifications: 5, ProperlySegregated: 5}, "100%"},
		{"rounds to nearest", Stats{TotalClassifications: 3, ProperlySegregated: 1}, "33%"},
		{"rounds up", Stats{TotalClassifications: 3, ProperlySegregated: 2}, "67%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.stats.SegregationRate())
		})
	}
}
