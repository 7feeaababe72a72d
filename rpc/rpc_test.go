package rpc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfunc/chaoscards/config"
	"github.com/wfunc/chaoscards/deck"
	"github.com/wfunc/chaoscards/room"
	"github.com/wfunc/chaoscards/session"
)

type nopBroadcaster struct{}

func (nopBroadcaster) SendToPlayer(playerID string, msgID uint16, data []byte) error { return nil }

type nopScheduler struct{}

func (nopScheduler) After(delay time.Duration, fn func()) int64 { return 0 }

func TestListRoomsReportsLiveState(t *testing.T) {
	cfg := config.GameConfig{
		HandSize:        10,
		RoundSeconds:    45,
		RevealSeconds:   4,
		MinPlayers:      3,
		RoomCapacity:    10,
		DefaultWinScore: 7,
		WinScores:       []int{5, 7, 10},
		ChatMaxLen:      220,
	}
	src := &deck.Source{Prompts: deck.DefaultPrompts, Responses: deck.DefaultResponses}
	registry := room.NewManager(src, cfg, nopScheduler{})
	sessions := session.NewManager()

	rm := registry.CreateRoom(nopBroadcaster{})
	require.NoError(t, rm.Join("p1", "Alice"))
	require.NoError(t, rm.Join("p2", "Bob"))
	require.NoError(t, rm.Join("p3", "Carol"))
	require.NoError(t, rm.Start("p1", 7))
	registry.CreateRoom(nopBroadcaster{})

	svc := NewAdminService(registry, sessions)
	var reply ListRoomsReply
	require.NoError(t, svc.ListRooms(&ListRoomsArgs{}, &reply))

	require.Len(t, reply.Rooms, 2)
	assert.Equal(t, 0, reply.Sessions)

	byCode := make(map[string]RoomInfo)
	for _, info := range reply.Rooms {
		byCode[info.Code] = info
	}
	started, ok := byCode[rm.Code]
	require.True(t, ok)
	assert.Equal(t, "playing", started.Phase)
	assert.Equal(t, 1, started.Round)
	assert.Equal(t, 3, started.Players)
}
