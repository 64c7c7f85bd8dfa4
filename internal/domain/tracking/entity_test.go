package tracking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTrackingID(t *testing.T) {
	assert.Equal(t, "WM-2026-000007", FormatTrackingID(2026, 7))
	assert.Equal(t, "WM-2026-123456", FormatTrackingID(2026, 123456))
	assert.Equal(t, "WM-2026-", YearPrefix(2026))
}

func TestParseTrackingID(t *testing.T) {
	year, seq, err := ParseTrackingID("WM-2026-000042")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 42, seq)

	for _, bad := range []string{
		"",
		"WM-2026-42",
		"wm-2026-000042",
		"XX-2026-000042",
		"WM-26-000042",
		"WM-2026-000042-extra",
	} {
		_, _, err := ParseTrackingID(bad)
		assert.ErrorIs(t, err, ErrInvalidTrackingID, "input %q", bad)
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	id := FormatTrackingID(2025, 999999)
	year, seq, err := ParseTrackingID(id)
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 999999, seq)
}

func TestAddStatusUpdate(t *testing.T) {
	rec := &Record{TrackingID: "WM-2026-000001"}

	rec.AddStatusUpdate(StatusScheduled, "system", "Shipment scheduled", nil)
	require.Len(t, rec.History, 1)
	assert.Equal(t, StatusScheduled, rec.Status)
	assert.Nil(t, rec.Collection.CollectedDate)
	assert.Nil(t, rec.Disposal.DisposalDate)

	lat, lng := 12.97, 77.59
	rec.AddStatusUpdate(StatusCollected, "agent", "Picked up", &Location{Lat: &lat, Lng: &lng})
	require.Len(t, rec.History, 2)
	assert.Equal(t, StatusCollected, rec.Status)
	require.NotNil(t, rec.Collection.CollectedDate)
	assert.Nil(t, rec.Disposal.DisposalDate)

	entry := rec.History[1]
	assert.Equal(t, StatusCollected, entry.Status)
	assert.Equal(t, "agent", entry.UpdatedBy)
	require.NotNil(t, entry.Location)
	assert.Equal(t, 12.97, *entry.Location.Lat)

	rec.AddStatusUpdate(StatusDisposed, "facility", "", nil)
	require.Len(t, rec.History, 3)
	require.NotNil(t, rec.Disposal.DisposalDate)

	// The earlier entries are never rewritten.
	assert.Equal(t, StatusScheduled, rec.History[0].Status)
	assert.Equal(t, StatusCollected, rec.History[1].Status)
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusDisposed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusScheduled.Terminal())
	assert.False(t, StatusInTransit.Terminal())
	assert.False(t, StatusAtFacility.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusScheduled.Valid())
	assert.True(t, StatusAtFacility.Valid())
	assert.False(t, Status("Lost").Valid())
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusCollected, StatusCancelled}, AllowedTransitions(StatusScheduled))
	assert.ElementsMatch(t, []Status{StatusInTransit, StatusAtFacility, StatusCancelled}, AllowedTransitions(StatusCollected))
	assert.Empty(t, AllowedTransitions(StatusDisposed))
	assert.Empty(t, AllowedTransitions(StatusCancelled))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusScheduled, StatusCollected))
	assert.True(t, CanTransition(StatusAtFacility, StatusDisposed))
	assert.True(t, CanTransition(StatusInTransit, StatusCancelled))
	assert.False(t, CanTransition(StatusScheduled, StatusDisposed))
	assert.False(t, CanTransition(StatusDisposed, StatusScheduled))
	assert.False(t, CanTransition(StatusCancelled, StatusCollected))
}
