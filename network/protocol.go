package network

// Message ids: 1xx inbound intents, 2xx per-connection replies, 3xx room-wide
// events. Chat shares one id in both directions.
const (
	MsgTypeHeartbeat = 1

	MsgTypeCreateRoom  = 101
	MsgTypeJoinRoom    = 102
	MsgTypeStartGame   = 103
	MsgTypeRestartGame = 104
	MsgTypeSubmitCards = 105
	MsgTypePickWinner  = 106
	MsgTypeChat        = 107

	MsgTypeRoomCreated = 201
	MsgTypeRoomJoined  = 202
	MsgTypeError       = 203

	MsgTypeRoomState   = 301
	MsgTypeRoundResult = 302
	MsgTypeGameOver    = 303
)
