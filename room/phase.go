package room

// Phase is a room's position in the game lifecycle.
type Phase string

const (
	PhaseLobby   Phase = "lobby"
	PhasePlaying Phase = "playing"
	PhaseJudging Phase = "judging"
	PhaseReveal  Phase = "reveal"
	PhaseEnded   Phase = "ended"
)

// validTransitions guards setPhase. Every started phase may fall back to
// playing because a host restart is a full game reset.
var validTransitions = map[Phase][]Phase{
	PhaseLobby:   {PhasePlaying},
	PhasePlaying: {PhaseJudging, PhasePlaying},
	PhaseJudging: {PhaseReveal, PhaseEnded, PhasePlaying},
	PhaseReveal:  {PhasePlaying},
	PhaseEnded:   {PhasePlaying},
}

func (p Phase) canTransition(to Phase) bool {
	for _, next := range validTransitions[p] {
		if next == to {
			return true
		}
	}
	return false
}

// setPhase moves the room to next, refusing transitions the lifecycle does not
// define. Caller holds r.mu.
func (r *Room) setPhase(next Phase) error {
	if !r.phase.canTransition(next) {
		return ErrIllegalPhase
	}
	r.phase = next
	return nil
}
