package main

// integrate runs the physics step for every entity and returns the advanced
// snapshot. It is a pure function of (snapshot, input): no randomness, no
// global state. New slices are always built so the previous snapshot stays
// intact for anyone still reading it.
func integrate(snap *Snapshot, in InputState, mode GameMode, cfg Config) Snapshot {
	next := *snap

	next.Ship = snap.Ship.Advanced(in, cfg)

	if len(snap.Asteroids) > 0 {
		asteroids := make([]Asteroid, 0, len(snap.Asteroids))
		for _, a := range snap.Asteroids {
			asteroids = append(asteroids, a.Advanced(cfg))
		}
		next.Asteroids = asteroids
	}

	if mode == ModeFormation {
		next.GroupOffset, next.GroupDir = sweepGroup(snap.GroupOffset, snap.GroupDir)
		if len(snap.Invaders) > 0 {
			invaders := make([]Invader, 0, len(snap.Invaders))
			for _, v := range snap.Invaders {
				invaders = append(invaders, v.Advanced(next.GroupOffset, cfg))
			}
			next.Invaders = invaders
		}
	}

	if len(snap.Projectiles) > 0 {
		projectiles := make([]Projectile, 0, len(snap.Projectiles))
		for _, p := range snap.Projectiles {
			adv := p.Advanced()
			if adv.Expired() {
				continue
			}
			projectiles = append(projectiles, adv)
		}
		next.Projectiles = projectiles
	}

	if len(snap.Particles) > 0 {
		particles := make([]Particle, 0, len(snap.Particles))
		for _, p := range snap.Particles {
			adv := p.Advanced()
			if adv.Expired() {
				continue
			}
			particles = append(particles, adv)
		}
		next.Particles = particles
	}

	return next
}

// sweepGroup advances the shared formation offset one tick, reversing
// direction at the sweep bounds
func sweepGroup(offset, dir float64) (float64, float64) {
	dt := 1.0 / float64(TickRate)
	offset += dir * GroupSweepSpeed * dt
	if offset >= GroupSweepBound {
		offset = GroupSweepBound
		dir = -1
	} else if offset <= -GroupSweepBound {
		offset = -GroupSweepBound
		dir = 1
	}
	return offset, dir
}
