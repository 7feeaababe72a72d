package room

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/wfunc/chaoscards/config"
	"github.com/wfunc/chaoscards/deck"
)

// Room codes avoid characters that read ambiguously over voice chat.
const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Manager is the registry of live rooms. It owns code generation and tears a
// room down once its last player leaves.
type Manager struct {
	mu    sync.RWMutex
	rooms map[string]*Room

	src   *deck.Source
	cfg   config.GameConfig
	sched Scheduler
}

func NewManager(src *deck.Source, cfg config.GameConfig, sched Scheduler) *Manager {
	return &Manager{
		rooms: make(map[string]*Room),
		src:   src,
		cfg:   cfg,
		sched: sched,
	}
}

// CreateRoom registers a new lobby under a code unique among live rooms.
func (m *Manager) CreateRoom(b Broadcaster) *Room {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.newCodeLocked()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	room := NewRoom(code, m.src, m.cfg, rng, b, m.sched)
	m.rooms[code] = room
	return room
}

func (m *Manager) newCodeLocked() string {
	for {
		buf := make([]byte, codeLength)
		for i := range buf {
			buf[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
		}
		if _, exists := m.rooms[string(buf)]; !exists {
			return string(buf)
		}
	}
}

// GetRoom resolves a code case-insensitively.
func (m *Manager) GetRoom(code string) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	room, ok := m.rooms[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// RemoveRoom closes and deletes a room.
func (m *Manager) RemoveRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if room, exists := m.rooms[code]; exists {
		room.Close()
		delete(m.rooms, code)
	}
}

// Rooms returns a snapshot of the live room set.
func (m *Manager) Rooms() []*Room {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, r)
	}
	return out
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// SweepDeadlines drives timed round expiry across every room. Wired to the
// scheduler's once-per-second repeating task.
func (m *Manager) SweepDeadlines(now time.Time) {
	for _, r := range m.Rooms() {
		r.SweepDeadline(now)
	}
}

// Disconnect detaches a connection from its room, destroying the room if it
// empties.
func (m *Manager) Disconnect(code, playerID string) {
	room, err := m.GetRoom(code)
	if err != nil {
		return
	}
	if room.Disconnect(playerID) {
		m.RemoveRoom(room.Code)
	}
}
