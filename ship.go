package main

import "math"

const (
	ShipRadius    = 12.0
	ShipThrust    = 220.0 // px/s²
	ShipMaxSpeed  = 320.0 // px/s
	ShipFriction  = 0.985 // velocity multiplier per tick when coasting
	ShipTurnSpeed = 4.5   // radians/s

	FireCooldown = 9   // ticks between shots
	InvulnWindow = 120 // ticks of protection after spawn or respawn

	HyperspaceCooldown = 240  // ticks between jumps
	HyperspaceMishap   = 0.04 // chance a jump destroys the ship
)

// Ship is the player vessel. One exists per game. Like every entity it is
// a value replaced each tick, never mutated in place.
type Ship struct {
	X, Y      float64
	VX, VY    float64
	Heading   float64
	Thrusting bool
	Invuln    int // ticks of invulnerability remaining
	FireCD    int
	HyperCD   int
	Lives     int
}

// NewShip places a ship at the center of the world, facing up
func NewShip(cfg Config) Ship {
	return Ship{
		X:       cfg.WorldWidth / 2,
		Y:       cfg.WorldHeight / 2,
		Heading: -math.Pi / 2,
		Lives:   cfg.Lives,
		Invuln:  InvulnWindow,
	}
}

// Advanced returns the ship after one physics tick under the given input.
// Velocity grows along the heading while thrusting (clamped to max speed)
// and decays by friction otherwise; position wraps toroidally; counters
// decrement toward zero and never go below it.
func (s Ship) Advanced(in InputState, cfg Config) Ship {
	dt := 1.0 / float64(TickRate)

	if in.HasHeading {
		s.Heading = NormalizeAngle(in.Heading)
	} else {
		if in.RotateLeft {
			s.Heading -= ShipTurnSpeed * dt
		}
		if in.RotateRight {
			s.Heading += ShipTurnSpeed * dt
		}
		s.Heading = NormalizeAngle(s.Heading)
	}

	s.Thrusting = in.Thrust
	if s.Thrusting {
		s.VX += math.Cos(s.Heading) * ShipThrust * dt
		s.VY += math.Sin(s.Heading) * ShipThrust * dt
		speed := math.Sqrt(s.VX*s.VX + s.VY*s.VY)
		if speed > ShipMaxSpeed {
			scale := ShipMaxSpeed / speed
			s.VX *= scale
			s.VY *= scale
		}
	} else {
		s.VX *= ShipFriction
		s.VY *= ShipFriction
	}

	s.X = WrapCoord(s.X+s.VX*dt, cfg.WorldWidth)
	s.Y = WrapCoord(s.Y+s.VY*dt, cfg.WorldHeight)

	if s.Invuln > 0 {
		s.Invuln--
	}
	if s.FireCD > 0 {
		s.FireCD--
	}
	if s.HyperCD > 0 {
		s.HyperCD--
	}
	return s
}

// Respawned resets position and motion after a hit. Remaining lives carry
// over; the invulnerability window restarts.
func (s Ship) Respawned(cfg Config) Ship {
	s.X = cfg.WorldWidth / 2
	s.Y = cfg.WorldHeight / 2
	s.VX = 0
	s.VY = 0
	s.Heading = -math.Pi / 2
	s.Thrusting = false
	s.Invuln = InvulnWindow
	return s
}

// CanFire reports whether a fire action is accepted this tick
func (s Ship) CanFire() bool {
	return s.FireCD == 0
}

// CanHyperspace reports whether a jump is accepted this tick
func (s Ship) CanHyperspace() bool {
	return s.HyperCD == 0
}

// ToState converts to protocol state
func (s Ship) ToState() ShipState {
	return ShipState{
		X:      round1(s.X),
		Y:      round1(s.Y),
		VX:     round1(s.VX),
		VY:     round1(s.VY),
		H:      round1(s.Heading),
		Thrust: s.Thrusting,
		Invuln: s.Invuln > 0,
		Lives:  s.Lives,
	}
}
