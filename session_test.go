package main

import (
	"testing"
	"time"
)

func TestCreateSessionStartsGame(t *testing.T) {
	sm := NewSessionManager(nil)
	defer sm.Close()

	sess := sm.CreateSession("Arena", ModeAsteroids)
	if sess == nil {
		t.Fatal("session should be created")
	}
	if sm.GetSession(sess.ID) != sess {
		t.Error("session should be retrievable by ID")
	}
	if sess.Game.Mode() != ModeAsteroids {
		t.Error("session should carry the requested mode")
	}
	if sess.Game.Snapshot().Status != StatusReady {
		t.Error("a fresh session waits in ready")
	}
}

func TestSessionTuningOverrides(t *testing.T) {
	sm := NewSessionManager([]byte("lives: 5\n"))
	defer sm.Close()

	sess := sm.CreateSession("Tuned", ModeAsteroids)
	if got := sess.Game.Snapshot().Ship.Lives; got != 5 {
		t.Errorf("tuning should reach the game config, got %d lives", got)
	}
}

func TestPilotSeat(t *testing.T) {
	sm := NewSessionManager(nil)
	defer sm.Close()

	sess := sm.CreateSession("Arena", ModeAsteroids)
	if !sm.ClaimPilot(sess.ID, "c1") {
		t.Fatal("first claim should take the seat")
	}
	if sm.ClaimPilot(sess.ID, "c2") {
		t.Error("occupied seat should refuse a second claim")
	}
	if !sm.IsPilot(sess.ID, "c1") || sm.IsPilot(sess.ID, "c2") {
		t.Error("pilot bookkeeping wrong")
	}

	// Pilot leaving vacates the seat for the next claimant
	sm.DetachClient(sess.ID, "c1")
	if !sm.ClaimPilot(sess.ID, "c2") {
		t.Error("vacated seat should accept a new claim")
	}
}

func TestPilotLeavePausesGame(t *testing.T) {
	sm := NewSessionManager(nil)
	defer sm.Close()

	sess := sm.CreateSession("Arena", ModeAsteroids)
	sm.ClaimPilot(sess.ID, "c1")
	sess.Game.StartGame()

	sm.DetachClient(sess.ID, "c1")
	if sess.Game.Snapshot().Status != StatusPaused {
		t.Errorf("pilot leaving should pause the game, got %s", sess.Game.Snapshot().Status)
	}
}

func TestSessionLimit(t *testing.T) {
	sm := NewSessionManager(nil)
	defer sm.Close()

	for i := 0; i < maxSessions; i++ {
		if sm.CreateSession("s", ModeAsteroids) == nil {
			t.Fatalf("creation %d should succeed", i)
		}
	}
	if sm.CreateSession("overflow", ModeAsteroids) != nil {
		t.Error("creation past the limit should fail")
	}
}

func TestListSessions(t *testing.T) {
	sm := NewSessionManager(nil)
	defer sm.Close()

	sm.CreateSession("One", ModeAsteroids)
	sm.CreateSession("Two", ModeFormation)

	list := sm.ListSessions()
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	modes := map[string]bool{}
	for _, info := range list {
		modes[info.Mode] = true
	}
	if !modes["asteroids"] || !modes["formation"] {
		t.Error("list should report each session's mode")
	}
}

func TestJanitorRemovesIdleSessions(t *testing.T) {
	prev := SessionIdleTimeout
	SessionIdleTimeout = 150 * time.Millisecond
	defer func() { SessionIdleTimeout = prev }()

	sm := NewSessionManager(nil)
	defer sm.Close()

	sess := sm.CreateSession("Ghost", ModeAsteroids)
	time.Sleep(500 * time.Millisecond)

	if sm.GetSession(sess.ID) != nil {
		t.Error("idle session should be swept")
	}
}

// nullBroadcaster discards everything; stands in for a real client
type nullBroadcaster struct{}

func (nullBroadcaster) SendJSON(msg interface{}) {}
func (nullBroadcaster) SendBinary(data []byte)   {}

func TestJanitorKeepsOccupiedSessions(t *testing.T) {
	prev := SessionIdleTimeout
	SessionIdleTimeout = 150 * time.Millisecond
	defer func() { SessionIdleTimeout = prev }()

	sm := NewSessionManager(nil)
	defer sm.Close()

	sess := sm.CreateSession("Busy", ModeAsteroids)
	sess.Game.AddClient("c1", nullBroadcaster{})
	time.Sleep(500 * time.Millisecond)

	if sm.GetSession(sess.ID) == nil {
		t.Error("occupied session should survive the sweep")
	}
}
