package main

const (
	WaveInvulnGrant = 90 // ticks of protection granted when a wave spawns

	FormationSpacingX = 44.0
	FormationSpacingY = 34.0
	FormationTop      = 60.0
)

// Row layout of a formation wave, top to bottom
var formationRows = []InvaderType{
	InvaderBoss,
	InvaderRaider,
	InvaderGrunt,
	InvaderGrunt,
}

// waveCleared reports whether the mode's obstacle collection is empty
func waveCleared(snap *Snapshot, mode GameMode) bool {
	if mode == ModeFormation {
		return len(snap.Invaders) == 0
	}
	return len(snap.Asteroids) == 0
}

// nextWave advances the wave counter and repopulates obstacles with a
// count that grows with the wave number. Transient projectiles are
// cleared and the ship gets a brief invulnerability window so a wave
// never spawns into an instant death.
func nextWave(snap *Snapshot, mode GameMode, rng *Rand, cfg Config) {
	snap.Wave++
	snap.Projectiles = nil
	if snap.Ship.Invuln < WaveInvulnGrant {
		snap.Ship.Invuln = WaveInvulnGrant
	}

	switch mode {
	case ModeFormation:
		snap.Invaders = spawnFormation(snap.Wave, cfg)
		snap.GroupOffset = 0
		snap.GroupDir = 1
	default:
		snap.Asteroids = spawnAsteroidField(snap.Wave, rng, cfg)
	}
}

// spawnAsteroidField seeds the wave with large edge-spawned rocks
func spawnAsteroidField(wave int, rng *Rand, cfg Config) []Asteroid {
	count := cfg.BaseAsteroids + (wave-1)*cfg.AsteroidsPerWave
	if count > cfg.MaxObstacles {
		count = cfg.MaxObstacles
	}
	field := make([]Asteroid, 0, count)
	for i := 0; i < count; i++ {
		field = append(field, NewAsteroidAtEdge(rng, cfg))
	}
	return field
}

// spawnFormation builds the anchor grid: one boss row, one raider row, two
// grunt rows, centered horizontally. Columns grow with the wave number up
// to the configured cap.
func spawnFormation(wave int, cfg Config) []Invader {
	cols := cfg.BaseColumns + (wave - 1)
	if cols > cfg.MaxColumns {
		cols = cfg.MaxColumns
	}
	width := float64(cols-1) * FormationSpacingX
	left := (cfg.WorldWidth - width) / 2

	grid := make([]Invader, 0, cols*len(formationRows))
	for row, typ := range formationRows {
		y := FormationTop + float64(row)*FormationSpacingY
		for col := 0; col < cols; col++ {
			x := left + float64(col)*FormationSpacingX
			grid = append(grid, NewInvader(typ, x, y))
		}
	}
	if len(grid) > cfg.MaxObstacles {
		grid = grid[:cfg.MaxObstacles]
	}
	return grid
}
