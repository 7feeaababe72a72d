package broadcast

import (
	"errors"

	"github.com/wfunc/chaoscards/session"
)

var ErrSessionNotFound = errors.New("session not found")

// RoomBroadcaster routes outbound payloads to the connections behind player
// ids. It implements room.Broadcaster; rooms do their own per-viewer fan-out
// because every participant receives a different redacted snapshot.
type RoomBroadcaster struct {
	sessions *session.Manager
}

func NewRoomBroadcaster(sessions *session.Manager) *RoomBroadcaster {
	return &RoomBroadcaster{sessions: sessions}
}

// SendToPlayer delivers one payload to a single connection. A missing session
// means the player disconnected mid-broadcast; callers skip and move on.
func (b *RoomBroadcaster) SendToPlayer(playerID string, msgID uint16, data []byte) error {
	sess, exists := b.sessions.Get(playerID)
	if !exists {
		return ErrSessionNotFound
	}
	return sess.Send(msgID, data)
}

// BroadcastToAll delivers one payload to every live connection, regardless of
// room. Used for server-wide notices such as shutdown.
func (b *RoomBroadcaster) BroadcastToAll(msgID uint16, data []byte) {
	for _, sess := range b.sessions.All() {
		if err := sess.Send(msgID, data); err != nil {
			continue
		}
	}
}
