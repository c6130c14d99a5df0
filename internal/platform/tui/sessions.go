package tui

import "sync"

// sessionID identifies one SSH connection.
type sessionID string

// gameSlot holds the game running in a session so it can be stopped from
// outside the Bubble Tea loop, on disconnect or server shutdown.
type gameSlot struct {
	mu     sync.Mutex
	game   *Model
	closed bool
}

// set replaces the tracked game. It reports false once the slot is closed.
func (g *gameSlot) set(m *Model) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	g.game = m
	return true
}

// close stops the tracked game and rejects later ones.
// Safe to call multiple times.
func (g *gameSlot) close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	if g.game != nil {
		g.game.Close()
		g.game = nil
	}
}

// sessionRegistry tracks the game slots of connected sessions.
// Thread-safe for concurrent access.
type sessionRegistry struct {
	mu       sync.RWMutex
	sessions map[sessionID]*gameSlot
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{
		sessions: make(map[sessionID]*gameSlot),
	}
}

func (r *sessionRegistry) register(id sessionID, slot *gameSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = slot
}

func (r *sessionRegistry) unregister(id sessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *sessionRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// closeAll stops every tracked game and empties the registry.
// It returns how many sessions were closed.
func (r *sessionRegistry) closeAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.sessions)
	for id, slot := range r.sessions {
		slot.close()
		delete(r.sessions, id)
	}
	return n
}
