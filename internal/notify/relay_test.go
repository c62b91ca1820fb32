package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostThenAutoExpire(t *testing.T) {
	relay := NewRelay(30 * time.Millisecond)

	relay.Post(TypeSuccess, "Order placed", "Your order is on its way")
	require.Len(t, relay.Active(), 1)

	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, relay.Active())
}

func TestDismissRemovesOnlyTarget(t *testing.T) {
	relay := NewRelay(time.Minute)

	first := relay.Post(TypeError, "Oops", "first")
	relay.Post(TypeInfo, "FYI", "second")

	relay.Dismiss(first.ID)

	active := relay.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "second", active[0].Message)
}

func TestIdenticalNotificationsStack(t *testing.T) {
	relay := NewRelay(time.Minute)

	relay.Post(TypeWarning, "Same", "same message")
	relay.Post(TypeWarning, "Same", "same message")

	active := relay.Active()
	require.Len(t, active, 2)
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestInsertionOrderPreserved(t *testing.T) {
	relay := NewRelay(time.Minute)

	relay.Post(TypeInfo, "one", "")
	relay.Post(TypeInfo, "two", "")
	relay.Post(TypeInfo, "three", "")

	active := relay.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "one", active[0].Title)
	assert.Equal(t, "three", active[2].Title)
}

func TestDismissUnknownIDIsNoop(t *testing.T) {
	relay := NewRelay(time.Minute)
	relay.Post(TypeInfo, "keep", "")

	relay.Dismiss("no-such-id")

	assert.Len(t, relay.Active(), 1)
}

func TestHubIsolatesSessions(t *testing.T) {
	hub := NewHub(time.Minute)

	hub.Relay("s1").Post(TypeSuccess, "only s1", "")

	assert.Len(t, hub.Relay("s1").Active(), 1)
	assert.Empty(t, hub.Relay("s2").Active())
	assert.Same(t, hub.Relay("s1"), hub.Relay("s1"))
}
