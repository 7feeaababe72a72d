package room

import "errors"

var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room full")
	ErrGameStarted      = errors.New("game already started")
	ErrNotInRoom        = errors.New("not a player in this room")
	ErrNotHost          = errors.New("only the host can do that")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrNotJudge         = errors.New("only the card czar can pick a winner")
	ErrJudgeSubmitting  = errors.New("the card czar does not submit")
	ErrAlreadySubmitted = errors.New("already submitted this round")
	ErrWrongCardCount   = errors.New("wrong number of cards for this prompt")
	ErrCardNotHeld      = errors.New("card is not in your hand")
	ErrNoSubmission     = errors.New("that player has no submission this round")

	// ErrIllegalPhase marks an operation that is merely stale for the current
	// phase; the transport layer drops it silently instead of reporting it.
	ErrIllegalPhase = errors.New("operation not allowed in current phase")
)
