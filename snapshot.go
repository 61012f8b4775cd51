package main

// Status is the lifecycle state of a game
type Status int

const (
	StatusReady    Status = 0
	StatusPlaying  Status = 1
	StatusPaused   Status = 2
	StatusGameOver Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	default:
		return "ready"
	}
}

// Snapshot is the complete simulation state at a tick boundary. The
// scheduler builds a fresh Snapshot each tick and swaps it in whole, so a
// reader never observes a partially updated tick.
type Snapshot struct {
	Tick      uint64
	Status    Status
	Score     int
	HighScore int
	Wave      int

	Ship        Ship
	Asteroids   []Asteroid
	Invaders    []Invader
	Projectiles []Projectile
	Particles   []Particle

	// Shared formation sweep: every formation invader moves in lockstep
	GroupOffset float64
	GroupDir    float64 // +1 or -1
}

// NewSnapshot returns the pre-game state
func NewSnapshot(cfg Config) Snapshot {
	return Snapshot{
		Status:   StatusReady,
		Ship:     NewShip(cfg),
		GroupDir: 1,
	}
}

// ObstacleCount returns the combined asteroid and invader count
func (s *Snapshot) ObstacleCount() int {
	return len(s.Asteroids) + len(s.Invaders)
}

// ToState converts the snapshot to the broadcast protocol state
func (s *Snapshot) ToState() StateMsg {
	msg := StateMsg{
		Tick:      s.Tick,
		Status:    int(s.Status),
		Score:     s.Score,
		HighScore: s.HighScore,
		Wave:      s.Wave,
		Ship:      s.Ship.ToState(),
	}
	msg.Asteroids = make([]AsteroidState, 0, len(s.Asteroids))
	for _, a := range s.Asteroids {
		msg.Asteroids = append(msg.Asteroids, a.ToState())
	}
	msg.Enemies = make([]EnemyState, 0, len(s.Invaders))
	for _, v := range s.Invaders {
		msg.Enemies = append(msg.Enemies, v.ToState())
	}
	msg.Projectiles = make([]ProjectileState, 0, len(s.Projectiles))
	for _, p := range s.Projectiles {
		msg.Projectiles = append(msg.Projectiles, p.ToState())
	}
	msg.Particles = make([]ParticleState, 0, len(s.Particles))
	for _, p := range s.Particles {
		msg.Particles = append(msg.Particles, p.ToState())
	}
	return msg
}
