package room

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() (*Manager, *recordingBroadcaster, *stubScheduler) {
	sched := &stubScheduler{}
	return NewManager(defaultSource(), testConfig(), sched), newRecordingBroadcaster(), sched
}

func TestCreateRoomGeneratesUniqueCodes(t *testing.T) {
	m, b, _ := newTestManager()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		rm := m.CreateRoom(b)
		require.Len(t, rm.Code, codeLength)
		for _, c := range rm.Code {
			assert.Contains(t, codeAlphabet, string(c))
		}
		assert.False(t, seen[rm.Code], "room code %s issued twice", rm.Code)
		seen[rm.Code] = true
	}
	assert.Equal(t, 50, m.Count())
}

func TestGetRoomIsCaseInsensitive(t *testing.T) {
	m, b, _ := newTestManager()
	rm := m.CreateRoom(b)

	got, err := m.GetRoom(strings.ToLower(rm.Code))
	require.NoError(t, err)
	assert.Same(t, rm, got)

	got, err = m.GetRoom("  " + rm.Code + " ")
	require.NoError(t, err)
	assert.Same(t, rm, got)

	_, err = m.GetRoom("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRemoveRoomClosesIt(t *testing.T) {
	m, b, _ := newTestManager()
	rm := m.CreateRoom(b)

	m.RemoveRoom(rm.Code)

	_, err := m.GetRoom(rm.Code)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.True(t, rm.closed, "removal must defuse pending timer callbacks")
	assert.Zero(t, m.Count())
}

func TestManagerDisconnectDestroysEmptiedRoom(t *testing.T) {
	m, b, _ := newTestManager()
	rm := m.CreateRoom(b)
	require.NoError(t, rm.Join("p1", "Alice"))
	require.NoError(t, rm.Join("p2", "Bob"))

	m.Disconnect(rm.Code, "p1")
	_, err := m.GetRoom(rm.Code)
	assert.NoError(t, err, "room survives while players remain")

	m.Disconnect(rm.Code, "p2")
	_, err = m.GetRoom(rm.Code)
	assert.ErrorIs(t, err, ErrRoomNotFound, "last player out destroys the room")

	// A disconnect for an unknown room is a no-op.
	m.Disconnect("NOSUCH", "p1")
}

func TestSweepDeadlinesCoversAllRooms(t *testing.T) {
	m, b, _ := newTestManager()

	var rooms []*Room
	for i := 0; i < 2; i++ {
		rm := m.CreateRoom(b)
		require.NoError(t, rm.Join("a"+rm.Code, "Alice"))
		require.NoError(t, rm.Join("b"+rm.Code, "Bob"))
		require.NoError(t, rm.Join("c"+rm.Code, "Carol"))
		require.NoError(t, rm.Start("a"+rm.Code, 7))
		rooms = append(rooms, rm)
	}

	m.SweepDeadlines(time.Now().Add(testConfig().RoundDuration() + time.Second))

	for _, rm := range rooms {
		assert.Equal(t, PhaseJudging, rm.Phase())
	}
}
