package main

import "sort"

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// Resolution accumulates the outcome of one detect pass over a single
// colliding category pair. Phase one only reads the already-advanced
// snapshot and fills these sets; phase two applies them in one batch, so
// no pair ever observes a half-applied tick and no entity is processed
// twice. This replaces the naive per-pair mutation that let one rock be
// split by several shots in the same tick.
type Resolution struct {
	consumedSources map[string]struct{} // projectiles spent this pass
	consumedTargets map[string]struct{} // destroyed targets: excluded from later pairs, removed at apply
	damage          map[string]int      // first-hit damage for survivors

	spawnAsteroids []Asteroid
	spawnParticles []Particle
	scoreDelta     int
	shipHit        bool
	events         []Event
}

func newResolution() *Resolution {
	return &Resolution{
		consumedSources: make(map[string]struct{}),
		consumedTargets: make(map[string]struct{}),
		damage:          make(map[string]int),
	}
}

// Empty reports whether the pass found nothing to apply
func (r *Resolution) Empty() bool {
	return len(r.consumedSources) == 0 && len(r.consumedTargets) == 0 &&
		!r.shipHit && len(r.spawnAsteroids) == 0 && len(r.spawnParticles) == 0
}

// candidateIndexes returns the sorted, deduplicated target indexes near
// (x, y), plus the grown query buffer for the caller to reuse on the
// next source. Sorting keeps the narrow phase visiting pairs in
// generation order regardless of grid cell layout, so resolution is
// deterministic.
func candidateIndexes(grid *SpatialGrid, x, y, radius float64, buf []EntityRef) ([]int, []EntityRef) {
	refs := grid.QueryBuf(x, y, radius, buf[:0])
	if len(refs) == 0 {
		return nil, refs
	}
	idxs := make([]int, 0, len(refs))
	for _, ref := range refs {
		idxs = append(idxs, ref.Idx)
	}
	sort.Ints(idxs)
	out := idxs[:1]
	for _, idx := range idxs[1:] {
		if idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return out, refs
}

// resolveShotsVsAsteroids is the detect phase for player shots against
// asteroids. A source resolves at most one target per tick. A destroyed
// target is excluded from the remaining pairs; a damaged survivor stays
// hittable but takes no further damage this tick.
func resolveShotsVsAsteroids(snap *Snapshot, rng *Rand) *Resolution {
	res := newResolution()
	if len(snap.Projectiles) == 0 || len(snap.Asteroids) == 0 {
		return res
	}

	var grid SpatialGrid
	for i, a := range snap.Asteroids {
		grid.InsertCircle(a.X, a.Y, a.Radius(), EntityRef{Kind: 'a', Idx: i})
	}

	var buf []EntityRef
	for _, p := range snap.Projectiles {
		if p.Owner != OwnerPlayer {
			continue
		}
		var idxs []int
		idxs, buf = candidateIndexes(&grid, p.X, p.Y, ProjectileRadius, buf)
		for _, idx := range idxs {
			a := snap.Asteroids[idx]
			if _, done := res.consumedTargets[a.ID]; done {
				continue
			}
			if !CheckCollision(p.X, p.Y, ProjectileRadius, a.X, a.Y, a.Radius()) {
				continue
			}
			res.consumedSources[p.ID] = struct{}{}
			if a.HP-1 <= 0 {
				res.consumedTargets[a.ID] = struct{}{}
				res.scoreDelta += a.Score()
				res.spawnAsteroids = append(res.spawnAsteroids, a.Split(rng)...)
				res.spawnParticles = append(res.spawnParticles,
					NewBurst(rng, a.X, a.Y, ExplosionParticles, ColorExplosion)...)
				res.events = append(res.events, Event{Name: EventExploded, X: a.X, Y: a.Y})
			} else {
				// Survivor stays in play for later sources this tick, but
				// only the first hit's damage counts
				res.damage[a.ID] = 1
			}
			break
		}
	}
	return res
}

// resolveShotsVsInvaders is the detect phase for player shots against
// formation enemies. Same contract as the asteroid pass, with hit-point
// decrements for enemies that survive the first hit.
func resolveShotsVsInvaders(snap *Snapshot, rng *Rand) *Resolution {
	res := newResolution()
	if len(snap.Projectiles) == 0 || len(snap.Invaders) == 0 {
		return res
	}

	var grid SpatialGrid
	for i, v := range snap.Invaders {
		grid.InsertCircle(v.X, v.Y, InvaderRadius, EntityRef{Kind: 'v', Idx: i})
	}

	var buf []EntityRef
	for _, p := range snap.Projectiles {
		if p.Owner != OwnerPlayer {
			continue
		}
		var idxs []int
		idxs, buf = candidateIndexes(&grid, p.X, p.Y, ProjectileRadius, buf)
		for _, idx := range idxs {
			v := snap.Invaders[idx]
			if _, done := res.consumedTargets[v.ID]; done {
				continue
			}
			if !CheckCollision(p.X, p.Y, ProjectileRadius, v.X, v.Y, InvaderRadius) {
				continue
			}
			res.consumedSources[p.ID] = struct{}{}
			if v.HP-1 <= 0 {
				res.consumedTargets[v.ID] = struct{}{}
				res.scoreDelta += v.Score()
				res.spawnParticles = append(res.spawnParticles,
					NewBurst(rng, v.X, v.Y, ExplosionParticles, ColorExplosion)...)
				res.events = append(res.events, Event{Name: EventExploded, X: v.X, Y: v.Y})
			} else {
				res.damage[v.ID] = 1
			}
			break // a source resolves at most one target per tick
		}
	}
	return res
}

// resolveShipVsObstacles is the detect phase for the ship against rocks
// and invaders. The ship is the single source: at most one obstacle
// contact registers per tick, and an invulnerable ship registers none.
// Obstacles survive the contact; the ship takes the hit.
func resolveShipVsObstacles(snap *Snapshot, rng *Rand) *Resolution {
	res := newResolution()
	if snap.Ship.Invuln > 0 {
		return res
	}
	s := snap.Ship

	for _, a := range snap.Asteroids {
		if CheckCollision(s.X, s.Y, ShipRadius, a.X, a.Y, a.Radius()) {
			res.markShipHit(rng, s)
			return res
		}
	}
	for _, v := range snap.Invaders {
		if CheckCollision(s.X, s.Y, ShipRadius, v.X, v.Y, InvaderRadius) {
			res.markShipHit(rng, s)
			return res
		}
	}
	return res
}

// resolveShipVsEnemyShots is the detect phase for enemy projectiles
// against the ship. The first overlapping shot is consumed and registers
// the hit; later shots that tick are left alone.
func resolveShipVsEnemyShots(snap *Snapshot, rng *Rand) *Resolution {
	res := newResolution()
	if snap.Ship.Invuln > 0 {
		return res
	}
	s := snap.Ship

	for _, p := range snap.Projectiles {
		if p.Owner != OwnerEnemy {
			continue
		}
		if CheckCollision(p.X, p.Y, ProjectileRadius, s.X, s.Y, ShipRadius) {
			res.consumedSources[p.ID] = struct{}{}
			res.markShipHit(rng, s)
			return res
		}
	}
	return res
}

func (r *Resolution) markShipHit(rng *Rand, s Ship) {
	r.shipHit = true
	r.spawnParticles = append(r.spawnParticles,
		NewBurst(rng, s.X, s.Y, ShipHitParticles, ColorShipHit)...)
	r.events = append(r.events, Event{Name: EventShipHit, X: s.X, Y: s.Y})
}

// applyResolution is phase two: it builds the successor snapshot in a
// single batch — removals, hit-point decrements, spawns, score, ship hit
// and the post-batch safety caps — and returns it. No intermediate state
// is observable.
func applyResolution(snap *Snapshot, res *Resolution, cfg Config) *Snapshot {
	next := *snap

	if len(res.consumedSources) > 0 {
		kept := make([]Projectile, 0, len(snap.Projectiles))
		for _, p := range snap.Projectiles {
			if _, gone := res.consumedSources[p.ID]; gone {
				continue
			}
			kept = append(kept, p)
		}
		next.Projectiles = kept
	}

	if len(res.consumedTargets) > 0 || len(res.damage) > 0 || len(res.spawnAsteroids) > 0 {
		kept := make([]Asteroid, 0, len(snap.Asteroids)+len(res.spawnAsteroids))
		for _, a := range snap.Asteroids {
			if _, gone := res.consumedTargets[a.ID]; gone {
				continue
			}
			if dmg, ok := res.damage[a.ID]; ok {
				a.HP -= dmg
				if a.HP < 0 {
					a.HP = 0
				}
			}
			kept = append(kept, a)
		}
		next.Asteroids = append(kept, res.spawnAsteroids...)

		invaders := make([]Invader, 0, len(snap.Invaders))
		for _, v := range snap.Invaders {
			if _, gone := res.consumedTargets[v.ID]; gone {
				continue
			}
			if dmg, ok := res.damage[v.ID]; ok {
				v.HP -= dmg
				if v.HP < 0 {
					v.HP = 0
				}
			}
			invaders = append(invaders, v)
		}
		next.Invaders = invaders
	}

	if len(res.spawnParticles) > 0 {
		particles := make([]Particle, 0, len(snap.Particles)+len(res.spawnParticles))
		particles = append(particles, snap.Particles...)
		particles = append(particles, res.spawnParticles...)
		next.Particles = particles
	}

	next.Score += res.scoreDelta

	if res.shipHit {
		next.Ship.Lives--
		if next.Ship.Lives <= 0 {
			next.Ship.Lives = 0
			next.Status = StatusGameOver
			if next.Score > next.HighScore {
				next.HighScore = next.Score
			}
		} else {
			next.Ship = next.Ship.Respawned(cfg)
		}
	}

	// Safety caps: bound worst-case growth after pathological spawn
	// bursts, retaining the first N in generation order
	if len(next.Asteroids) > cfg.MaxObstacles {
		next.Asteroids = next.Asteroids[:cfg.MaxObstacles]
	}
	if len(next.Asteroids)+len(next.Invaders) > cfg.MaxObstacles {
		next.Invaders = next.Invaders[:cfg.MaxObstacles-len(next.Asteroids)]
	}
	if len(next.Particles) > cfg.MaxParticles {
		next.Particles = next.Particles[:cfg.MaxParticles]
	}

	return &next
}
