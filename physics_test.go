package main

import (
	"math"
	"testing"
)

func TestIntegratePreservesPreviousSnapshot(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	rng := NewRand(1)
	snap := testSnapshot(cfg)
	snap.Asteroids = []Asteroid{NewAsteroid(rng, 100, 100, AsteroidMedium)}
	snap.Projectiles = []Projectile{{ID: "p1", Owner: OwnerPlayer, VX: 100, Life: 10}}

	beforeX := snap.Asteroids[0].X
	beforeLife := snap.Projectiles[0].Life

	integrate(snap, InputState{}, ModeAsteroids, cfg)

	if snap.Asteroids[0].X != beforeX {
		t.Error("integrate must not mutate the previous snapshot's asteroids")
	}
	if snap.Projectiles[0].Life != beforeLife {
		t.Error("integrate must not mutate the previous snapshot's projectiles")
	}
}

func TestIntegrateDropsExpiredProjectiles(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	snap := testSnapshot(cfg)
	snap.Projectiles = []Projectile{
		{ID: "dying", Owner: OwnerPlayer, Life: 1},
		{ID: "alive", Owner: OwnerPlayer, Life: 10},
	}

	next := integrate(snap, InputState{}, ModeAsteroids, cfg)
	if len(next.Projectiles) != 1 || next.Projectiles[0].ID != "alive" {
		t.Errorf("expired projectile should be dropped, got %d left", len(next.Projectiles))
	}
}

func TestIntegrateDropsExpiredParticles(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	rng := NewRand(2)
	snap := testSnapshot(cfg)
	snap.Particles = NewBurst(rng, 100, 100, ExplosionParticles, ColorExplosion)

	next := *snap
	for i := 0; i < ParticleMaxLife+1; i++ {
		next = integrate(&next, InputState{}, ModeAsteroids, cfg)
	}
	if len(next.Particles) != 0 {
		t.Errorf("all particles should decay, %d left", len(next.Particles))
	}
}

func TestIntegrateAdvancesFormationInLockstep(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)
	snap := testSnapshot(cfg)
	snap.Invaders = spawnFormation(1, cfg)
	snap.GroupDir = 1

	next := integrate(snap, InputState{}, ModeFormation, cfg)
	if next.GroupOffset <= 0 {
		t.Fatal("sweep should advance right")
	}
	for _, v := range next.Invaders {
		if v.X != v.AnchorX+next.GroupOffset {
			t.Errorf("invader off the shared offset: X=%f anchor=%f", v.X, v.AnchorX)
		}
	}
}

func TestProjectileLifetime(t *testing.T) {
	p := Projectile{ID: "p", Life: 3}
	for i := 0; i < 2; i++ {
		p = p.Advanced()
		if p.Expired() {
			t.Fatalf("projectile expired too early at step %d", i)
		}
	}
	p = p.Advanced()
	if !p.Expired() {
		t.Error("projectile should expire after its lifetime")
	}
}

func TestShipShotSpawnsAtNose(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	s := NewShip(cfg)
	s.Heading = 0

	p := NewShipShot(s)
	if p.Owner != OwnerPlayer {
		t.Error("ship shots are player-owned")
	}
	if math.Abs(p.X-(s.X+ProjectileOffset)) > 1e-9 || math.Abs(p.Y-s.Y) > 1e-9 {
		t.Errorf("shot should spawn ahead of the ship, got (%f, %f)", p.X, p.Y)
	}
	if p.VX <= ProjectileSpeed-1 {
		t.Error("shot should fly along the heading at projectile speed")
	}
}

func TestEnemyShotAimsStraight(t *testing.T) {
	p := NewEnemyShot(100, 100, 100, 500)
	if p.Owner != OwnerEnemy {
		t.Error("enemy shots are enemy-owned")
	}
	if math.Abs(p.VX) > 1e-9 || p.VY <= 0 {
		t.Errorf("shot should aim straight down at the target, got (%f, %f)", p.VX, p.VY)
	}
	speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
	if math.Abs(speed-EnemyShotSpeed) > 1e-9 {
		t.Errorf("enemy shot speed should be %f, got %f", float64(EnemyShotSpeed), speed)
	}
}

func TestNewBurst(t *testing.T) {
	rng := NewRand(3)
	ps := NewBurst(rng, 250, 250, ShipHitParticles, ColorShipHit)
	if len(ps) != ShipHitParticles {
		t.Fatalf("expected %d particles, got %d", ShipHitParticles, len(ps))
	}
	for _, p := range ps {
		if p.X != 250 || p.Y != 250 {
			t.Error("particles radiate from the burst origin")
		}
		if p.Life < ParticleMinLife || p.Life > ParticleMaxLife {
			t.Errorf("particle life %d outside [%d, %d]", p.Life, ParticleMinLife, ParticleMaxLife)
		}
		if p.Color != ColorShipHit {
			t.Error("burst color should carry through")
		}
	}
}

func TestWrapCoord(t *testing.T) {
	if got := WrapCoord(-5, 800); got != 795 {
		t.Errorf("WrapCoord(-5, 800) = %f, want 795", got)
	}
	if got := WrapCoord(805, 800); got != 5 {
		t.Errorf("WrapCoord(805, 800) = %f, want 5", got)
	}
	if got := WrapCoord(400, 800); got != 400 {
		t.Errorf("WrapCoord(400, 800) = %f, want 400", got)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi); math.Abs(got-math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(3π) = %f, want π", got)
	}
	if got := NormalizeAngle(-3 * math.Pi); math.Abs(got+math.Pi) > 1e-9 {
		t.Errorf("NormalizeAngle(-3π) = %f, want -π", got)
	}
}

func TestRandDeterminism(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 100; i++ {
		if a.Float() != b.Float() {
			t.Fatal("same seed must produce the same sequence")
		}
	}
}

func TestRandRanges(t *testing.T) {
	rng := NewRand(5)
	for i := 0; i < 1000; i++ {
		if f := rng.Float(); f < 0 || f >= 1 {
			t.Fatalf("Float() = %f outside [0, 1)", f)
		}
		if v := rng.Range(10, 20); v < 10 || v >= 20 {
			t.Fatalf("Range(10, 20) = %f", v)
		}
		if n := rng.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn(6) = %d", n)
		}
	}
}
