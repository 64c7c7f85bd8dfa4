package wasteguide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wastetrack/internal/domain/waste"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		category waste.Category
	}{
		{"food waste", waste.CategoryBiodegradable},
		{"Plastic bottle", waste.CategoryRecyclable},
		{"old newspaper and cardboard", waste.CategoryRecyclable},
		{"broken electronic charger", waste.CategoryEWaste},
		{"used battery", waste.CategoryEWaste},
		{"chemical solvent", waste.CategoryHazardous},
		{"something unrecognizable", waste.CategoryBiodegradable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			entry := Lookup(tt.input)
			assert.Equal(t, tt.category, entry.Category)
		})
	}
}

func TestSearch(t *testing.T) {
	results := Search("bottle")
	require.NotEmpty(t, results)
	for _, r := range results {
		require.NotEmpty(t, r.MatchingItems)
		for _, item := range r.MatchingItems {
			assert.Contains(t, item, "bottle")
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Nil(t, Search(""))
	assert.Nil(t, Search("   "))
}

func TestSearchNoMatches(t *testing.T) {
	assert.Empty(t, Search("zzzzzz"))
}

func TestEntriesCoverAllBins(t *testing.T) {
	entries := Entries()
	require.NotEmpty(t, entries)

	seen := map[waste.BinColor]bool{}
	for _, e := range entries {
		assert.NotEmpty(t, e.Key)
		assert.NotEmpty(t, e.Items)
		assert.NotEmpty(t, e.DisposalInstructions)
		seen[e.BinColor] = true
	}
	assert.True(t, seen[waste.BinGreen])
	assert.True(t, seen[waste.BinBlue])
	assert.True(t, seen[waste.BinRed])
}
