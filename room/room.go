package room

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/wfunc/chaoscards/config"
	"github.com/wfunc/chaoscards/deck"
	"github.com/wfunc/chaoscards/logger"
	"github.com/wfunc/chaoscards/models"
	"github.com/wfunc/chaoscards/network"
)

// Player is one participant's authoritative in-room state. ID is the opaque
// connection identifier; roster order defines the judge rotation.
type Player struct {
	ID        string
	Name      string
	Hand      []string
	Score     int
	Submitted bool
}

// Submission pairs a player with the response cards they chose this round.
type Submission struct {
	PlayerID string
	Cards    []string
}

// Room owns all mutable state for one game. Every operation takes the room
// mutex, so operations on the same room never interleave; different rooms are
// fully independent.
type Room struct {
	Code      string
	CreatedAt time.Time

	mu          sync.Mutex
	hostID      string
	started     bool
	phase       Phase
	players     []*Player
	czarIndex   int
	round       int
	prompt      *deck.PromptCard
	submissions []Submission
	phaseEndsAt time.Time
	winScore    int
	piles       *deck.Piles
	closed      bool

	cfg         config.GameConfig
	rng         *rand.Rand
	broadcaster Broadcaster
	sched       Scheduler
}

// NewRoom initializes a lobby with fresh shuffled decks.
func NewRoom(code string, src *deck.Source, cfg config.GameConfig, rng *rand.Rand, b Broadcaster, sched Scheduler) *Room {
	return &Room{
		Code:        code,
		CreatedAt:   time.Now(),
		phase:       PhaseLobby,
		winScore:    cfg.DefaultWinScore,
		piles:       deck.NewPiles(src, rng),
		cfg:         cfg,
		rng:         rng,
		broadcaster: b,
		sched:       sched,
	}
}

// Join adds a connection to the roster. A join from a player already in the
// room is a no-op. The first player to join becomes host.
func (r *Room) Join(playerID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if p.ID == playerID {
			return nil
		}
	}
	if r.started {
		return ErrGameStarted
	}
	if len(r.players) >= r.cfg.RoomCapacity {
		return ErrRoomFull
	}

	player := &Player{ID: playerID, Name: uniqueName(r.players, name, "Player")}
	r.players = append(r.players, player)
	if r.hostID == "" {
		r.hostID = playerID
	}
	r.broadcastStateLocked()
	return nil
}

// Start begins the game from the lobby: seating shuffled, hands dealt, scores
// zeroed, then the first round.
func (r *Room) Start(actorID string, winScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hostID != actorID {
		return ErrNotHost
	}
	if r.phase != PhaseLobby {
		return ErrIllegalPhase
	}
	if len(r.players) < r.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}

	r.resetGameLocked(winScore)
	r.startRoundLocked()
	return nil
}

// Restart re-initializes a started game in place: fresh decks, reshuffled
// seating, scores zeroed. Accepted from any in-game phase; the reveal timer's
// phase re-check keeps a stale advance from firing afterwards.
func (r *Room) Restart(actorID string, winScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hostID != actorID {
		return ErrNotHost
	}
	if !r.started {
		return ErrIllegalPhase
	}
	if len(r.players) < r.cfg.MinPlayers {
		return ErrNotEnoughPlayers
	}

	r.piles.Reset()
	r.broadcastChatLocked("System", "🔁 New game started.")
	r.resetGameLocked(winScore)
	r.startRoundLocked()
	return nil
}

// resetGameLocked performs the shared (re)start initialization.
func (r *Room) resetGameLocked(winScore int) {
	r.winScore = normalizeWinScore(winScore, r.cfg)
	r.started = true
	r.rng.Shuffle(len(r.players), func(i, j int) {
		r.players[i], r.players[j] = r.players[j], r.players[i]
	})
	for _, p := range r.players {
		p.Hand = r.piles.DrawResponses(r.cfg.HandSize)
		p.Score = 0
		p.Submitted = false
	}
	r.czarIndex = 0
	r.round = 0
	r.submissions = nil
	r.phaseEndsAt = time.Time{}
}

// startRoundLocked begins the next round: fresh deadline, new prompt, hands
// topped up, submitted flags cleared.
func (r *Room) startRoundLocked() {
	if err := r.setPhase(PhasePlaying); err != nil {
		logger.Log.Errorf("Room %s refused round start from phase %s", r.Code, r.phase)
		return
	}
	r.round++
	r.phaseEndsAt = time.Now().Add(r.cfg.RoundDuration())
	r.submissions = nil
	card := r.piles.DrawPrompt()
	r.prompt = &card
	for _, p := range r.players {
		if missing := r.cfg.HandSize - len(p.Hand); missing > 0 {
			p.Hand = append(p.Hand, r.piles.DrawResponses(missing)...)
		}
		p.Submitted = false
	}
	r.broadcastStateLocked()
}

// Submit records a player's response cards for the current round. Ownership is
// validated on a scratch copy of the hand, so a rejected submission leaves the
// hand untouched.
func (r *Room) Submit(actorID string, cards []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhasePlaying {
		return ErrIllegalPhase
	}
	player := r.findPlayerLocked(actorID)
	if player == nil {
		return ErrNotInRoom
	}
	if player == r.czarLocked() {
		return ErrJudgeSubmitting
	}
	if player.Submitted {
		return ErrAlreadySubmitted
	}
	if len(cards) != r.pickLocked() {
		return ErrWrongCardCount
	}

	remaining := append([]string(nil), player.Hand...)
	for _, card := range cards {
		i := indexOf(remaining, card)
		if i < 0 {
			return ErrCardNotHeld
		}
		remaining = append(remaining[:i], remaining[i+1:]...)
	}

	player.Hand = remaining
	player.Submitted = true
	r.submissions = append(r.submissions, Submission{
		PlayerID: player.ID,
		Cards:    append([]string(nil), cards...),
	})
	if !r.maybeJudgingLocked() {
		r.broadcastStateLocked()
	}
	return nil
}

// SweepDeadline force-submits laggards and advances to judging once the round
// deadline has passed. The scheduler calls this for every room each tick.
func (r *Room) SweepDeadline(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.phase != PhasePlaying || r.phaseEndsAt.IsZero() || now.Before(r.phaseEndsAt) {
		return
	}

	czar := r.czarLocked()
	pick := r.pickLocked()
	for _, p := range r.players {
		if p == czar || p.Submitted {
			continue
		}
		if missing := pick - len(p.Hand); missing > 0 {
			p.Hand = append(p.Hand, r.piles.DrawResponses(missing)...)
		}
		cards := append([]string(nil), p.Hand[:pick]...)
		p.Hand = append([]string(nil), p.Hand[pick:]...)
		p.Submitted = true
		r.submissions = append(r.submissions, Submission{PlayerID: p.ID, Cards: cards})
	}

	r.broadcastChatLocked("System", "⏱️ Time is up. Missing players auto-submitted.")
	r.enterJudgingLocked()
}

// PickWinner scores the czar's choice and either ends the game or schedules
// the next round after a short reveal.
func (r *Room) PickWinner(actorID, winnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != PhaseJudging {
		return ErrIllegalPhase
	}
	czar := r.czarLocked()
	if czar == nil || czar.ID != actorID {
		return ErrNotJudge
	}
	winner := r.findPlayerLocked(winnerID)
	var winningCards []string
	for _, s := range r.submissions {
		if s.PlayerID == winnerID {
			winningCards = s.Cards
			break
		}
	}
	if winner == nil || winningCards == nil {
		return ErrNoSubmission
	}

	winner.Score++
	r.broadcastEventLocked(network.MsgTypeRoundResult, models.RoundResult{
		Winner: winner.Name,
		Cards:  winningCards,
	})

	if winner.Score >= r.winScore {
		if err := r.setPhase(PhaseEnded); err != nil {
			return err
		}
		r.phaseEndsAt = time.Time{}
		r.broadcastEventLocked(network.MsgTypeGameOver, models.GameOver{Winner: winner.Name})
		r.broadcastStateLocked()
		return nil
	}

	if err := r.setPhase(PhaseReveal); err != nil {
		return err
	}
	r.phaseEndsAt = time.Now().Add(r.cfg.RevealDuration())
	r.broadcastStateLocked()
	r.sched.After(r.cfg.RevealDuration(), r.advanceFromReveal)
	return nil
}

// advanceFromReveal rotates the czar and starts the next round. The phase
// re-check is the only guard against this firing after a restart, game end, or
// room teardown has already moved the room on.
func (r *Room) advanceFromReveal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.phase != PhaseReveal || len(r.players) == 0 {
		return
	}
	r.czarIndex = (r.czarIndex + 1) % len(r.players)
	r.startRoundLocked()
}

// Chat relays a player's message to the whole room, length-capped.
func (r *Room) Chat(actorID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	player := r.findPlayerLocked(actorID)
	if player == nil {
		return ErrNotInRoom
	}
	if runes := []rune(text); len(runes) > r.cfg.ChatMaxLen {
		text = string(runes[:r.cfg.ChatMaxLen])
	}
	r.broadcastChatLocked(player.Name, text)
	return nil
}

// Disconnect removes a player and repairs the room around the hole they leave:
// host handoff, czar clamp, pending-submission discard, and a completeness
// re-check mid-round. Returns true when the room is now empty and should be
// destroyed.
func (r *Room) Disconnect(playerID string) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, p := range r.players {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	wasHost := r.hostID == playerID
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	for i, s := range r.submissions {
		if s.PlayerID == playerID {
			r.submissions = append(r.submissions[:i], r.submissions[i+1:]...)
			break
		}
	}

	if len(r.players) == 0 {
		r.closed = true
		return true
	}
	if wasHost {
		r.hostID = r.players[0].ID
	}
	if r.czarIndex >= len(r.players) {
		r.czarIndex = 0
	}
	if r.phase == PhasePlaying && r.maybeJudgingLocked() {
		return false
	}
	r.broadcastStateLocked()
	return false
}

// Close marks the room defunct so stale timer callbacks become no-ops.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// maybeJudgingLocked enters judging once every non-czar player has submitted.
func (r *Room) maybeJudgingLocked() bool {
	needed := len(r.players) - 1
	if len(r.submissions) < needed {
		return false
	}
	r.enterJudgingLocked()
	return true
}

// enterJudgingLocked clears the deadline and shuffles submissions so the czar
// cannot infer authorship from their order.
func (r *Room) enterJudgingLocked() {
	if err := r.setPhase(PhaseJudging); err != nil {
		logger.Log.Errorf("Room %s refused judging from phase %s", r.Code, r.phase)
		return
	}
	r.phaseEndsAt = time.Time{}
	r.rng.Shuffle(len(r.submissions), func(i, j int) {
		r.submissions[i], r.submissions[j] = r.submissions[j], r.submissions[i]
	})
	r.broadcastStateLocked()
}

func (r *Room) findPlayerLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) czarLocked() *Player {
	if len(r.players) == 0 || r.czarIndex >= len(r.players) {
		return nil
	}
	return r.players[r.czarIndex]
}

func (r *Room) pickLocked() int {
	if r.prompt == nil || r.prompt.Pick < 1 {
		return 1
	}
	return r.prompt.Pick
}

// broadcastStateLocked sends each player their own redacted snapshot.
func (r *Room) broadcastStateLocked() {
	for _, p := range r.players {
		data, err := json.Marshal(r.snapshotLocked(p.ID))
		if err != nil {
			logger.Log.Errorf("Room %s failed to marshal snapshot: %v", r.Code, err)
			return
		}
		if err := r.broadcaster.SendToPlayer(p.ID, network.MsgTypeRoomState, data); err != nil {
			continue
		}
	}
}

func (r *Room) broadcastEventLocked(msgID uint16, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Log.Errorf("Room %s failed to marshal event %d: %v", r.Code, msgID, err)
		return
	}
	for _, p := range r.players {
		if err := r.broadcaster.SendToPlayer(p.ID, msgID, data); err != nil {
			continue
		}
	}
}

func (r *Room) broadcastChatLocked(name, text string) {
	r.broadcastEventLocked(network.MsgTypeChat, models.ChatMessage{Name: name, Text: text})
}

func normalizeWinScore(v int, cfg config.GameConfig) int {
	for _, allowed := range cfg.WinScores {
		if v == allowed {
			return v
		}
	}
	return cfg.DefaultWinScore
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return -1
}

// Accessors used by the transport, admin RPC, and tests.

func (r *Room) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

func (r *Room) Round() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.round
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Room) HostID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostID
}

// Snapshot derives viewerID's redacted projection of the room.
func (r *Room) Snapshot(viewerID string) models.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(viewerID)
}
