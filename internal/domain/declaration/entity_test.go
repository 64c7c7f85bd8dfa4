package declaration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func suffix(s string) func() string {
	return func() string { return s }
}

func TestNormalizeDerivesTotal(t *testing.T) {
	d := &Declaration{
		Period: Period{Month: 3, Year: 2026},
		Categories: []LineItem{
			{Category: CategoryChemical, Amount: 500, Unit: UnitKg},
			{Category: CategoryMetalScrap, Amount: 2, Unit: UnitTons},
		},
	}

	d.Normalize(suffix("ABC123"))

	assert.Equal(t, 2.5, d.TotalAmount)
	assert.Equal(t, UnitTons, d.TotalUnit)
	assert.Equal(t, "IW202603-ABC123", d.TrackingID)
}

func TestNormalizeKeepsExplicitTotal(t *testing.T) {
	d := &Declaration{
		Period:      Period{Month: 12, Year: 2025},
		TotalAmount: 9.75,
		TotalUnit:   UnitTons,
		Categories: []LineItem{
			{Category: CategoryHazardous, Amount: 100, Unit: UnitKg},
		},
	}

	d.Normalize(suffix("XYZ789"))

	assert.Equal(t, 9.75, d.TotalAmount)
	assert.Equal(t, "IW202512-XYZ789", d.TrackingID)
}

func TestNormalizeIdempotent(t *testing.T) {
	d := &Declaration{
		Period: Period{Month: 1, Year: 2026},
		Categories: []LineItem{
			{Category: CategoryRecyclable, Amount: 1234, Unit: UnitKg},
		},
	}

	d.Normalize(suffix("AAAAAA"))
	first := *d
	d.Normalize(suffix("BBBBBB"))

	assert.Equal(t, first.TrackingID, d.TrackingID)
	assert.Equal(t, first.TotalAmount, d.TotalAmount)
}

func TestNormalizeRounding(t *testing.T) {
	d := &Declaration{
		Period: Period{Month: 6, Year: 2026},
		Categories: []LineItem{
			{Category: CategoryPlasticWaste, Amount: 333, Unit: UnitKg},
			{Category: CategoryOther, Amount: 333, Unit: UnitKg},
		},
	}

	d.Normalize(suffix("CCCCCC"))

	// 0.666 tons rounds to two decimals.
	assert.Equal(t, 0.67, d.TotalAmount)
}

func TestLineItemTons(t *testing.T) {
	assert.Equal(t, 0.5, LineItem{Amount: 500, Unit: UnitKg}.Tons())
	assert.Equal(t, 2.0, LineItem{Amount: 2, Unit: UnitTons}.Tons())
}

func TestPeriodValid(t *testing.T) {
	tests := []struct {
		period Period
		valid  bool
	}{
		{Period{Month: 1, Year: 2026}, true},
		{Period{Month: 12, Year: 2026}, true},
		{Period{Month: 0, Year: 2026}, false},
		{Period{Month: 13, Year: 2026}, false},
		{Period{Month: 6, Year: 0}, false},
		{Period{Month: 6, Year: -1}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.period.Valid(), "period %+v", tt.period)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusUnderReview.Valid())
	assert.False(t, Status("Archived").Valid())
}
