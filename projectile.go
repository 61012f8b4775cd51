package main

import "math"

const (
	ProjectileSpeed    = 480.0 // px/s
	ProjectileLifetime = 55    // ticks
	ProjectileRadius   = 2.0
	ProjectileOffset   = 14.0 // spawn distance from ship center

	EnemyShotSpeed    = 180.0
	EnemyShotLifetime = 240
	MaxPlayerShots    = 4 // player projectiles alive at once
)

// ProjectileOwner tags who fired a projectile
type ProjectileOwner int

const (
	OwnerPlayer ProjectileOwner = 0
	OwnerEnemy  ProjectileOwner = 1
)

// Projectile flies in a straight line until its lifetime runs out or it
// resolves against a target. Projectiles do not wrap.
type Projectile struct {
	ID     string
	Owner  ProjectileOwner
	X, Y   float64
	VX, VY float64
	Life   int // ticks remaining
}

// NewShipShot spawns a projectile from the ship's nose, inheriting a
// fraction of ship velocity
func NewShipShot(s Ship) Projectile {
	return Projectile{
		ID:    GenerateID(3),
		Owner: OwnerPlayer,
		X:     s.X + math.Cos(s.Heading)*ProjectileOffset,
		Y:     s.Y + math.Sin(s.Heading)*ProjectileOffset,
		VX:    math.Cos(s.Heading)*ProjectileSpeed + s.VX*0.3,
		VY:    math.Sin(s.Heading)*ProjectileSpeed + s.VY*0.3,
		Life:  ProjectileLifetime,
	}
}

// NewEnemyShot spawns a projectile aimed in a straight line at (tx, ty).
// No lead prediction.
func NewEnemyShot(x, y, tx, ty float64) Projectile {
	angle := math.Atan2(ty-y, tx-x)
	return Projectile{
		ID:    GenerateID(3),
		Owner: OwnerEnemy,
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * EnemyShotSpeed,
		VY:    math.Sin(angle) * EnemyShotSpeed,
		Life:  EnemyShotLifetime,
	}
}

// Advanced returns the projectile after one physics tick
func (p Projectile) Advanced() Projectile {
	dt := 1.0 / float64(TickRate)
	p.X += p.VX * dt
	p.Y += p.VY * dt
	if p.Life > 0 {
		p.Life--
	}
	return p
}

// Expired reports whether the projectile should be dropped this tick
func (p Projectile) Expired() bool {
	return p.Life == 0
}

// ToState converts to protocol state
func (p Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    p.ID,
		X:     round1(p.X),
		Y:     round1(p.Y),
		Owner: int(p.Owner),
	}
}
