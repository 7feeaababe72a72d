package models

import (
	"github.com/wfunc/chaoscards/deck"
)

// PlayerPublic is what any participant may see about any player. It carries no
// identifier, so a judging-phase submission cannot be correlated to a person.
type PlayerPublic struct {
	Name      string `json:"name"`
	Score     int    `json:"score"`
	HandCount int    `json:"hand_count"`
	IsCzar    bool   `json:"is_czar"`
}

// PlayerSelf is the viewer's own record, hand included.
type PlayerSelf struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Hand      []string `json:"hand"`
	Score     int      `json:"score"`
	Submitted bool     `json:"submitted"`
}

// SubmissionView is one anonymized submission shown during judging. ID is the
// submitter's opaque connection id, echoed back in pick_winner; it appears
// nowhere else in the snapshot.
type SubmissionView struct {
	ID    string   `json:"id"`
	Cards []string `json:"cards"`
}

// RoomSnapshot is the per-viewer redacted projection of a room.
type RoomSnapshot struct {
	Code        string           `json:"code"`
	Started     bool             `json:"started"`
	Phase       string           `json:"phase"`
	Round       int              `json:"round"`
	Prompt      *deck.PromptCard `json:"prompt"`
	WinScore    int              `json:"win_score"`
	CzarName    string           `json:"czar_name"`
	Players     []PlayerPublic   `json:"players"`
	Me          *PlayerSelf      `json:"me"`
	PhaseEndsAt int64            `json:"phase_ends_at"` // unix ms, 0 when untimed
	WaitingOn   []string         `json:"waiting_on"`
	Submissions []SubmissionView `json:"submissions"`
}

// Outbound events.

type RoomCreated struct {
	Code string `json:"code"`
}

type RoomJoined struct {
	Code string `json:"code"`
}

type ErrorEvent struct {
	Message string `json:"message"`
}

type ChatMessage struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type RoundResult struct {
	Winner string   `json:"winner"`
	Cards  []string `json:"cards"`
}

type GameOver struct {
	Winner string `json:"winner"`
}

// Inbound intents.

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type JoinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StartGameRequest struct {
	Code     string `json:"code"`
	WinScore int    `json:"win_score"`
}

type SubmitCardsRequest struct {
	Code  string   `json:"code"`
	Cards []string `json:"cards"`
}

type PickWinnerRequest struct {
	Code     string `json:"code"`
	WinnerID string `json:"winner_id"`
}

type ChatRequest struct {
	Code string `json:"code"`
	Text string `json:"text"`
}
