package room

import (
	"github.com/wfunc/chaoscards/models"
)

// snapshotLocked derives one viewer's redacted projection of the room. It is a
// pure derivation: everything it exposes is copied, nothing in the room is
// mutated. Other players appear without ids so a judging-phase submission can
// never be correlated to a person; only the viewer's own record carries the
// hand. Caller holds r.mu.
func (r *Room) snapshotLocked(viewerID string) models.RoomSnapshot {
	czar := r.czarLocked()
	snap := models.RoomSnapshot{
		Code:     r.Code,
		Started:  r.started,
		Phase:    string(r.phase),
		Round:    r.round,
		WinScore: r.winScore,
		Players:  make([]models.PlayerPublic, 0, len(r.players)),
	}
	if czar != nil {
		snap.CzarName = czar.Name
	}
	if r.prompt != nil {
		card := *r.prompt
		snap.Prompt = &card
	}
	if !r.phaseEndsAt.IsZero() {
		snap.PhaseEndsAt = r.phaseEndsAt.UnixMilli()
	}

	for _, p := range r.players {
		snap.Players = append(snap.Players, models.PlayerPublic{
			Name:      p.Name,
			Score:     p.Score,
			HandCount: len(p.Hand),
			IsCzar:    p == czar,
		})
		if p != czar && !p.Submitted {
			snap.WaitingOn = append(snap.WaitingOn, p.Name)
		}
		if p.ID == viewerID {
			snap.Me = &models.PlayerSelf{
				ID:        p.ID,
				Name:      p.Name,
				Hand:      append([]string(nil), p.Hand...),
				Score:     p.Score,
				Submitted: p.Submitted,
			}
		}
	}

	// Submissions stay hidden until judging; their order was already shuffled
	// on entry to the phase.
	if r.phase == PhaseJudging {
		snap.Submissions = make([]models.SubmissionView, 0, len(r.submissions))
		for _, s := range r.submissions {
			snap.Submissions = append(snap.Submissions, models.SubmissionView{
				ID:    s.PlayerID,
				Cards: append([]string(nil), s.Cards...),
			})
		}
	}
	return snap
}
