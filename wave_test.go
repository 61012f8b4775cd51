package main

import "testing"

func TestWaveCleared(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	snap := testSnapshot(cfg)

	if !waveCleared(snap, ModeAsteroids) {
		t.Error("empty field should read as cleared")
	}
	snap.Asteroids = []Asteroid{NewAsteroid(NewRand(1), 100, 100, AsteroidSmall)}
	if waveCleared(snap, ModeAsteroids) {
		t.Error("field with a rock is not cleared")
	}

	// Invaders are the formation mode's obstacle collection
	if !waveCleared(snap, ModeFormation) {
		t.Error("formation mode ignores asteroids when judging a clear")
	}
	snap.Invaders = []Invader{NewInvader(InvaderGrunt, 100, 100)}
	if waveCleared(snap, ModeFormation) {
		t.Error("formation with an invader is not cleared")
	}
}

func TestNextWaveAsteroids(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	rng := NewRand(1)
	snap := testSnapshot(cfg)
	snap.Wave = 0
	snap.Ship.Invuln = 0
	snap.Projectiles = []Projectile{{ID: "p1", Owner: OwnerPlayer, Life: 10}}

	nextWave(snap, ModeAsteroids, rng, cfg)
	if snap.Wave != 1 {
		t.Errorf("expected wave 1, got %d", snap.Wave)
	}
	if len(snap.Asteroids) != cfg.BaseAsteroids {
		t.Errorf("expected %d asteroids on wave 1, got %d", cfg.BaseAsteroids, len(snap.Asteroids))
	}
	if len(snap.Projectiles) != 0 {
		t.Error("wave transition should clear projectiles")
	}
	if snap.Ship.Invuln != WaveInvulnGrant {
		t.Errorf("wave spawn should grant protection, got %d", snap.Ship.Invuln)
	}

	nextWave(snap, ModeAsteroids, rng, cfg)
	if len(snap.Asteroids) != cfg.BaseAsteroids+cfg.AsteroidsPerWave {
		t.Errorf("wave 2 should grow the field, got %d", len(snap.Asteroids))
	}
}

func TestNextWaveDoesNotShrinkProtection(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	snap := testSnapshot(cfg)
	snap.Ship.Invuln = InvulnWindow // bigger than the wave grant

	nextWave(snap, ModeAsteroids, NewRand(1), cfg)
	if snap.Ship.Invuln != InvulnWindow {
		t.Errorf("a longer window should survive the wave grant, got %d", snap.Ship.Invuln)
	}
}

func TestSpawnFormationLayout(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)

	grid := spawnFormation(1, cfg)
	want := cfg.BaseColumns * len(formationRows)
	if len(grid) != want {
		t.Fatalf("expected %d invaders on wave 1, got %d", want, len(grid))
	}

	// Top row is bosses, bottom rows are grunts
	if grid[0].Type != InvaderBoss {
		t.Error("top row should be bosses")
	}
	if grid[len(grid)-1].Type != InvaderGrunt {
		t.Error("bottom row should be grunts")
	}

	// Horizontally centered anchor grid
	left := grid[0].AnchorX
	right := grid[cfg.BaseColumns-1].AnchorX
	if left+right != cfg.WorldWidth {
		t.Errorf("grid should be centered: left %f right %f", left, right)
	}
	if grid[0].AnchorY != FormationTop {
		t.Errorf("top row should anchor at %f, got %f", float64(FormationTop), grid[0].AnchorY)
	}
}

func TestSpawnFormationColumnCap(t *testing.T) {
	cfg := DefaultConfig(ModeFormation)

	grid := spawnFormation(20, cfg)
	perRow := cfg.MaxColumns
	wantCap := perRow * len(formationRows)
	if wantCap > cfg.MaxObstacles {
		wantCap = cfg.MaxObstacles
	}
	if len(grid) != wantCap {
		t.Errorf("columns should cap at %d, got %d invaders", cfg.MaxColumns, len(grid))
	}
}

func TestSpawnAsteroidFieldCap(t *testing.T) {
	cfg := DefaultConfig(ModeAsteroids)
	rng := NewRand(7)

	field := spawnAsteroidField(100, rng, cfg)
	if len(field) != cfg.MaxObstacles {
		t.Errorf("field should cap at %d, got %d", cfg.MaxObstacles, len(field))
	}
}
