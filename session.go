package main

import (
	"sync"
	"time"
)

const maxSessions = 100

// SessionIdleTimeout is how long a session may sit with no attached
// clients before the janitor removes it. A variable so tests can shrink it.
var SessionIdleTimeout = 5 * time.Minute

// Session is one hosted game that clients attach to
type Session struct {
	ID      string
	Name    string
	Game    *Game
	pilotID string    // client driving the ship; "" when vacant
	emptyAt time.Time // when the last client detached
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	tuning   []byte // raw YAML overrides applied over per-mode defaults
	stop     chan struct{}
}

// NewSessionManager creates a manager; tuning may be nil
func NewSessionManager(tuning []byte) *SessionManager {
	sm := &SessionManager{
		sessions: make(map[string]*Session),
		tuning:   tuning,
		stop:     make(chan struct{}),
	}
	go sm.janitor()
	return sm
}

// configFor layers the manager's YAML tuning over the mode defaults
func (sm *SessionManager) configFor(mode GameMode) Config {
	cfg := DefaultConfig(mode)
	if len(sm.tuning) > 0 {
		if merged, err := mergeTuning(cfg, sm.tuning); err == nil {
			cfg = merged
		}
	}
	return cfg
}

// CreateSession creates a new game session running the given mode.
// Returns nil if the session limit is reached.
func (sm *SessionManager) CreateSession(name string, mode GameMode) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	game := NewGame(mode, sm.configFor(mode))
	sess := &Session{
		ID:      GenerateUUID(),
		Name:    name,
		Game:    game,
		emptyAt: time.Now(),
	}
	sm.sessions[sess.ID] = sess
	go game.Run()
	return sess
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// ClaimPilot makes clientID the pilot if the seat is vacant; reports
// whether the claim succeeded
func (sm *SessionManager) ClaimPilot(sessionID, clientID string) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sess, ok := sm.sessions[sessionID]
	if !ok || sess.pilotID != "" {
		return false
	}
	sess.pilotID = clientID
	return true
}

// IsPilot reports whether clientID holds the session's pilot seat
func (sm *SessionManager) IsPilot(sessionID, clientID string) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sess, ok := sm.sessions[sessionID]
	return ok && sess.pilotID == clientID
}

// DetachClient removes a client from a session. When the pilot leaves the
// game pauses; when the last client leaves the idle clock starts.
func (sm *SessionManager) DetachClient(sessionID, clientID string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[sessionID]
	if !ok {
		sm.mu.Unlock()
		return
	}
	if sess.pilotID == clientID {
		sess.pilotID = ""
		sess.Game.Pause()
	}
	sm.mu.Unlock()

	sess.Game.RemoveClient(clientID)
	if sess.Game.ClientCount() == 0 {
		sm.mu.Lock()
		sess.emptyAt = time.Now()
		sm.mu.Unlock()
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Mode:    sess.Game.Mode().String(),
			Clients: sess.Game.ClientCount(),
		})
	}
	return list
}

// Close stops the janitor and all session games
func (sm *SessionManager) Close() {
	close(sm.stop)
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, sess := range sm.sessions {
		sess.Game.Stop()
		delete(sm.sessions, id)
	}
}

// janitor removes sessions that have sat empty past the idle timeout
func (sm *SessionManager) janitor() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sm.sweep()
		case <-sm.stop:
			return
		}
	}
}

func (sm *SessionManager) sweep() {
	now := time.Now()
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for id, sess := range sm.sessions {
		if sess.Game.ClientCount() == 0 && now.Sub(sess.emptyAt) > SessionIdleTimeout {
			sess.Game.Stop()
			delete(sm.sessions, id)
		}
	}
}
