package pickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestCompletionPoints(t *testing.T) {
	tests := []struct {
		name     string
		pickup   Pickup
		expected int
	}{
		{
			name:     "hazardous with actual weight",
			pickup:   Pickup{WasteType: WasteHazardous, EstimatedWeight: 5, ActualWeight: floatPtr(12.7)},
			expected: 37, // 25 base + floor(12.7)
		},
		{
			name:     "estimated weight used when actual missing",
			pickup:   Pickup{WasteType: WasteBiodegradable, EstimatedWeight: 3.9},
			expected: 13,
		},
		{
			name:     "recyclable whole weight",
			pickup:   Pickup{WasteType: WasteRecyclable, EstimatedWeight: 10},
			expected: 25,
		},
		{
			name:     "e-waste zero weight",
			pickup:   Pickup{WasteType: WasteEWaste, EstimatedWeight: 0},
			expected: 20,
		},
		{
			name:     "negative weight clamped",
			pickup:   Pickup{WasteType: WasteBiodegradable, EstimatedWeight: -4},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.pickup.CompletionPoints())
		})
	}
}

func TestSchedulePoints(t *testing.T) {
	p := Pickup{WasteType: WasteHazardous, EstimatedWeight: 12.7}
	// Full reward is 37; half of it floored is 18.
	assert.Equal(t, 18, p.SchedulePoints(0.5))

	// Out-of-range fractions fall back to half.
	assert.Equal(t, 18, p.SchedulePoints(0))
	assert.Equal(t, 18, p.SchedulePoints(-1))
	assert.Equal(t, 18, p.SchedulePoints(1.5))

	// A full fraction grants everything up front.
	assert.Equal(t, 37, p.SchedulePoints(1))
}

func TestBasePoints(t *testing.T) {
	assert.Equal(t, 10, BasePoints(WasteBiodegradable))
	assert.Equal(t, 15, BasePoints(WasteRecyclable))
	assert.Equal(t, 20, BasePoints(WasteEWaste))
	assert.Equal(t, 25, BasePoints(WasteHazardous))
	assert.Equal(t, 0, BasePoints(WasteType("unknown")))
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusScheduled.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusInProgress.Terminal())
}

func TestWasteTypeValid(t *testing.T) {
	assert.True(t, WasteBiodegradable.Valid())
	assert.True(t, WasteHazardous.Valid())
	assert.False(t, WasteType("nuclear").Valid())
}

func TestTimeSlotValid(t *testing.T) {
	assert.True(t, SlotMorning.Valid())
	assert.True(t, SlotAfternoon.Valid())
	assert.True(t, SlotEvening.Valid())
	assert.False(t, TimeSlot("midnight").Valid())
}
