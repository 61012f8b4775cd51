package main

import "math"

const (
	ParticleMinLife  = 18 // ticks
	ParticleMaxLife  = 42
	ParticleMinSpeed = 20.0
	ParticleMaxSpeed = 90.0

	ExplosionParticles = 8
	ShipHitParticles   = 14
)

// Particle burst colors by event
const (
	ColorExplosion = "#ffaa33"
	ColorShipHit   = "#66ccff"
)

// Particle is a cosmetic fragment spawned on destruction events. It never
// participates in collisions and is dropped after a fixed decay.
type Particle struct {
	ID     string
	X, Y   float64
	VX, VY float64
	Life   int // ticks remaining
	Color  string
}

// NewBurst spawns count particles radiating from (x, y)
func NewBurst(rng *Rand, x, y float64, count int, color string) []Particle {
	ps := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Angle()
		speed := rng.Range(ParticleMinSpeed, ParticleMaxSpeed)
		ps = append(ps, Particle{
			ID:    GenerateID(3),
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  ParticleMinLife + rng.Intn(ParticleMaxLife-ParticleMinLife),
			Color: color,
		})
	}
	return ps
}

// Advanced returns the particle after one physics tick. No wrap.
func (p Particle) Advanced() Particle {
	dt := 1.0 / float64(TickRate)
	p.X += p.VX * dt
	p.Y += p.VY * dt
	if p.Life > 0 {
		p.Life--
	}
	return p
}

// Expired reports whether the particle should be dropped this tick
func (p Particle) Expired() bool {
	return p.Life == 0
}

// ToState converts to protocol state
func (p Particle) ToState() ParticleState {
	return ParticleState{
		X:     round1(p.X),
		Y:     round1(p.Y),
		Color: p.Color,
	}
}
