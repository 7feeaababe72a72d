package room

import "time"

// Broadcaster delivers outbound payloads to the connection behind a player id.
// Defined here to break the import cycle between room and broadcast.
type Broadcaster interface {
	SendToPlayer(playerID string, msgID uint16, data []byte) error
}

// Scheduler runs delayed callbacks, used for the reveal-to-next-round advance.
// Defined here to break the import cycle between room and timer.
type Scheduler interface {
	After(delay time.Duration, fn func()) int64
}
