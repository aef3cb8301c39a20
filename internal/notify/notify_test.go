package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCenter(start time.Time) (*Center, *time.Time) {
	current := start
	c := NewCenter()
	c.now = func() time.Time { return current }
	return c, &current
}

func TestCenter_PushAndActive(t *testing.T) {
	center, _ := newTestCenter(time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC))

	center.Success("Transaction added successfully")
	center.Error("Error deleting transaction")

	active := center.Active()
	require.Len(t, active, 2)
	assert.Equal(t, KindSuccess, active[0].Kind)
	assert.Equal(t, KindError, active[1].Kind)
	// Oldest first, IDs strictly increasing
	assert.Less(t, active[0].ID, active[1].ID)
}

func TestCenter_NotificationsStack(t *testing.T) {
	center, _ := newTestCenter(time.Now())

	for i := 0; i < 5; i++ {
		center.Success("message")
	}

	// No queue limit: all five stack
	assert.Len(t, center.Active(), 5)
}

func TestCenter_ExpiryIncludesExitTransition(t *testing.T) {
	start := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	center, current := newTestCenter(start)

	notification := center.Success("done")
	assert.Equal(t, start.Add(VisibleFor+ExitTransition), notification.ExpiresAt())

	// Still visible just before the full window elapses
	*current = start.Add(VisibleFor + ExitTransition - time.Millisecond)
	assert.Len(t, center.Active(), 1)

	// Gone once visible window plus fade-out have both elapsed
	*current = start.Add(VisibleFor + ExitTransition)
	assert.Empty(t, center.Active())
}

func TestCenter_ActivePrunesOnlyExpired(t *testing.T) {
	start := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	center, current := newTestCenter(start)

	center.Success("old")
	*current = start.Add(2 * time.Second)
	center.Success("new")

	*current = start.Add(VisibleFor + ExitTransition)
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "new", active[0].Message)
}

func TestCenter_ActiveReturnsCopy(t *testing.T) {
	center, _ := newTestCenter(time.Now())
	center.Success("one")

	first := center.Active()
	first[0].Message = "mutated"

	second := center.Active()
	assert.Equal(t, "one", second[0].Message)
}
