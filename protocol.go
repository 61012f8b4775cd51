package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin    = "join"    // join a session as a spectator (or pilot if vacant)
	MsgCreate  = "create"  // create a session and become its pilot
	MsgList    = "list"    // list sessions
	MsgInput   = "input"   // held-control state
	MsgAction  = "action"  // edge-triggered action (fire, hyperspace)
	MsgStart   = "start"   // begin play from ready/game_over
	MsgPause   = "pause"
	MsgResume  = "resume"
	MsgControl = "control" // phone controller attach to an existing session
)

// Server -> Client message types
const (
	MsgWelcome   = "welcome"
	MsgCreated   = "created"
	MsgJoined    = "joined"
	MsgSessions  = "sessions"
	MsgEvent     = "event"
	MsgError     = "error"
	MsgControlOK = "control_ok"
)

// Discrete event names consumed by external audio/FX layers
const (
	EventFired       = "fired"
	EventExploded    = "exploded"
	EventWaveCleared = "wave_cleared"
	EventShipHit     = "ship_hit"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids
// double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// Event is a discrete named occurrence emitted during a tick
type Event struct {
	Name string  `json:"name"`
	X    float64 `json:"x,omitempty"`
	Y    float64 `json:"y,omitempty"`
}

// ClientInput carries the held controls; keyboard and on-screen widgets
// send the same shape
type ClientInput struct {
	Left       bool    `json:"l"`
	Right      bool    `json:"r"`
	Thrust     bool    `json:"t"`
	HasHeading bool    `json:"hh"`
	Heading    float64 `json:"h"`
}

// ActionMsg carries an edge-triggered command
type ActionMsg struct {
	Kind string `json:"k"` // "fire" or "hyperspace"
}

// CreateMsg is sent to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Mode        string `json:"mode"` // "asteroids" or "formation"
}

// JoinMsg is sent to join an existing session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
}

// ControlMsg attaches a controller device to a session's pilot
type ControlMsg struct {
	SID string `json:"sid"`
}

// WelcomeMsg is sent after a successful create/join
type WelcomeMsg struct {
	SessionID string `json:"sid"`
	Mode      string `json:"mode"`
	Pilot     bool   `json:"pilot"`
}

// SessionInfo is one entry of the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mode    string `json:"mode"`
	Clients int    `json:"clients"`
}

// ErrorMsg sends an error description to a client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// --- broadcast state (binary, msgpack) ---

// ShipState is the ship portion of a state broadcast
type ShipState struct {
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	VX     float64 `msgpack:"vx"`
	VY     float64 `msgpack:"vy"`
	H      float64 `msgpack:"h"` // heading radians
	Thrust bool    `msgpack:"t"`
	Invuln bool    `msgpack:"i"`
	Lives  int     `msgpack:"lv"`
}

// AsteroidState is broadcast per asteroid
type AsteroidState struct {
	ID    string    `msgpack:"id"`
	X     float64   `msgpack:"x"`
	Y     float64   `msgpack:"y"`
	R     float64   `msgpack:"r"` // rotation radians
	Size  int       `msgpack:"s"`
	Shape []float64 `msgpack:"sh"`
}

// EnemyState is broadcast per formation enemy
type EnemyState struct {
	ID    string  `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Type  int     `msgpack:"ty"`
	State int     `msgpack:"st"`
}

// ProjectileState is broadcast per projectile
type ProjectileState struct {
	ID    string  `msgpack:"id"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Owner int     `msgpack:"o"`
}

// ParticleState is broadcast per particle
type ParticleState struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Color string  `msgpack:"c"`
}

// StateMsg is the full snapshot broadcast each cadence frame. External
// renderers draw from it; HUDs read the numeric fields.
type StateMsg struct {
	Tick        uint64            `msgpack:"tick"`
	Status      int               `msgpack:"status"`
	Score       int               `msgpack:"score"`
	HighScore   int               `msgpack:"hiscore"`
	Wave        int               `msgpack:"wave"`
	Ship        ShipState         `msgpack:"ship"`
	Asteroids   []AsteroidState   `msgpack:"asteroids"`
	Enemies     []EnemyState      `msgpack:"enemies"`
	Projectiles []ProjectileState `msgpack:"projectiles"`
	Particles   []ParticleState   `msgpack:"particles"`
}
