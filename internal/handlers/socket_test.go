package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// capturePresence swaps the broadcast step for a recorder and returns a
// restore func plus the recorded snapshots.
func capturePresence(t *testing.T) *[][]string {
	t.Helper()

	onlineUsersMu.Lock()
	onlineUsers = make(map[string]string)
	onlineUsersMu.Unlock()

	var broadcasts [][]string
	original := emitOnlineUsers
	emitOnlineUsers = func(users []string) {
		snapshot := make([]string, len(users))
		copy(snapshot, users)
		broadcasts = append(broadcasts, snapshot)
	}
	t.Cleanup(func() { emitOnlineUsers = original })

	return &broadcasts
}

func TestPresence_AddAndRemove(t *testing.T) {
	broadcasts := capturePresence(t)

	AddOnlineUser("u1", "s1")
	AddOnlineUser("u2", "s2")

	assert.Len(t, *broadcasts, 2)
	assert.ElementsMatch(t, []string{"u1", "u2"}, (*broadcasts)[1])

	socketId, ok := GetReceiverSocketID("u1")
	assert.True(t, ok)
	assert.Equal(t, "s1", socketId)

	_, ok = GetReceiverSocketID("unknown")
	assert.False(t, ok)

	RemoveOnlineUser("u1")
	assert.Len(t, *broadcasts, 3)
	assert.ElementsMatch(t, []string{"u2"}, (*broadcasts)[2])
}

func TestPresence_ReconnectReplacesSocket(t *testing.T) {
	broadcasts := capturePresence(t)

	AddOnlineUser("u1", "s1")
	AddOnlineUser("u1", "s2")

	// Still one online user, now mapped to the newer socket
	assert.ElementsMatch(t, []string{"u1"}, GetOnlineUsers())
	socketId, ok := GetReceiverSocketID("u1")
	assert.True(t, ok)
	assert.Equal(t, "s2", socketId)

	// Every registration broadcasts, including the replacement
	assert.Len(t, *broadcasts, 2)
}

func TestPresence_RemoveIsIdempotent(t *testing.T) {
	broadcasts := capturePresence(t)

	AddOnlineUser("u1", "s1")
	RemoveOnlineUser("u1")
	RemoveOnlineUser("u1")

	// The second removal still publishes the unchanged set
	assert.Len(t, *broadcasts, 3)
	assert.Empty(t, (*broadcasts)[2])
	assert.Empty(t, GetOnlineUsers())
}

func TestPresence_DisconnectScenario(t *testing.T) {
	broadcasts := capturePresence(t)

	// Two users connect, one announces offline, then its transport closes
	AddOnlineUser("a", "sa")
	AddOnlineUser("b", "sb")
	RemoveOnlineUser("a")
	RemoveOnlineUser("a") // transport disconnect after userOffline

	assert.ElementsMatch(t, []string{"b"}, GetOnlineUsers())
	assert.Len(t, *broadcasts, 4)
	assert.ElementsMatch(t, []string{"b"}, (*broadcasts)[3])
}
