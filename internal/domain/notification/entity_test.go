package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkReadStampsOnce(t *testing.T) {
	n := &Notification{}

	first := time.Date(2026, 8, 10, 14, 30, 0, 0, time.UTC)
	n.MarkRead(first)

	assert.True(t, n.Read)
	require.NotNil(t, n.ReadAt)
	assert.Equal(t, first, *n.ReadAt)

	// A second call never moves the timestamp.
	n.MarkRead(first.Add(time.Hour))
	assert.Equal(t, first, *n.ReadAt)
}
