package feedback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetStatusStampsResolvedOnce(t *testing.T) {
	f := &Feedback{Status: StatusPending}

	first := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	f.SetStatus(StatusResolved, first)
	require.NotNil(t, f.ResolvedAt)
	assert.Equal(t, first, *f.ResolvedAt)

	// Re-resolving keeps the original timestamp.
	later := first.Add(48 * time.Hour)
	f.SetStatus(StatusResolved, later)
	assert.Equal(t, first, *f.ResolvedAt)
}

func TestSetStatusStampsClosedOnce(t *testing.T) {
	f := &Feedback{Status: StatusResolved}

	first := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)
	f.SetStatus(StatusClosed, first)
	require.NotNil(t, f.ClosedAt)
	assert.Equal(t, first, *f.ClosedAt)

	f.SetStatus(StatusClosed, first.Add(time.Hour))
	assert.Equal(t, first, *f.ClosedAt)
}

func TestSetStatusPlainTransition(t *testing.T) {
	f := &Feedback{Status: StatusPending}
	f.SetStatus(StatusInReview, time.Now())

	assert.Equal(t, StatusInReview, f.Status)
	assert.Nil(t, f.ResolvedAt)
	assert.Nil(t, f.ClosedAt)
}
