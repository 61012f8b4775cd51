package main

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // simulation ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

// Broadcaster is the channel snapshots and events leave the core through.
// The simulation never draws or makes sound itself.
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game owns one simulation. It is the sole writer of the snapshot: each
// scheduled tick samples input, runs the pipeline synchronously and
// commits exactly one new snapshot. Any number of readers (renderer, HUD,
// audio consumers) can observe the committed snapshot.
type Game struct {
	mu      sync.RWMutex
	cfg     Config
	mode    GameMode
	rng     *Rand
	snap    *Snapshot
	input   InputState
	pending []Action // edge-triggered actions applied at the next tick boundary
	clients map[string]Broadcaster
	frames  uint64
	running bool
	stop    chan struct{}
}

// NewGame creates a game with a random seed
func NewGame(mode GameMode, cfg Config) *Game {
	return newGameSeeded(mode, cfg, RandomSeed())
}

// newGameSeeded creates a game with an explicit seed so a run can be
// replayed deterministically
func newGameSeeded(mode GameMode, cfg Config, seed uint64) *Game {
	snap := NewSnapshot(cfg)
	return &Game{
		cfg:     cfg,
		mode:    mode,
		rng:     NewRand(seed),
		snap:    &snap,
		clients: make(map[string]Broadcaster),
		stop:    make(chan struct{}),
	}
}

// Run starts the frame scheduler: one tick per frame at a fixed cadence
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the scheduler
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// Mode returns the game's rule set
func (g *Game) Mode() GameMode {
	return g.mode
}

// Snapshot returns the last committed snapshot. Readers only ever see a
// fully committed tick.
func (g *Game) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snap
}

// SetInput replaces the held-control state sampled at the next tick
func (g *Game) SetInput(in InputState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.input = in
}

// QueueAction records an edge-triggered action for the next tick boundary.
// Actions that are meaningless in the current status are dropped when the
// tick applies them; queuing never errors.
func (g *Game) QueueAction(a Action) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = append(g.pending, a)
}

// AddClient attaches a snapshot/event consumer
func (g *Game) AddClient(id string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[id] = client
}

// RemoveClient detaches a consumer
func (g *Game) RemoveClient(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.clients, id)
}

// ClientCount returns the number of attached consumers
func (g *Game) ClientCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.clients)
}

// StartGame begins play from ready or game_over: score, lives and wave
// reset to initial values and wave 1 is populated. A no-op in any other
// status.
func (g *Game) StartGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.snap.Status != StatusReady && g.snap.Status != StatusGameOver {
		return
	}
	next := NewSnapshot(g.cfg)
	next.Tick = g.snap.Tick
	next.HighScore = g.snap.HighScore
	next.Status = StatusPlaying
	nextWave(&next, g.mode, g.rng, g.cfg)
	g.snap = &next
	g.pending = nil
}

// Pause suspends stepping. Entity state does not change while paused.
func (g *Game) Pause() {
	g.setStatus(StatusPlaying, StatusPaused)
}

// Resume continues a paused game
func (g *Game) Resume() {
	g.setStatus(StatusPaused, StatusPlaying)
}

func (g *Game) setStatus(from, to Status) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.snap.Status != from {
		return
	}
	next := *g.snap
	next.Status = to
	g.snap = &next
}

// update runs one scheduled frame: step the simulation if playing, then
// broadcast on the configured cadence
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	var events []Event
	if g.snap.Status == StatusPlaying {
		events = g.step()
	} else {
		// Edge actions issued outside playing are no-ops, not deferred
		g.pending = nil
	}

	g.frames++
	if g.frames%BroadcastEvery == 0 {
		g.broadcastState()
	}
	for _, ev := range events {
		g.broadcastMsg(Envelope{T: MsgEvent, Data: ev})
	}
}

// step advances the simulation exactly one tick and commits the next
// snapshot. Pipeline: sample input → integrate → apply edge actions →
// behavior triggers → resolve collisions (one batch per category) →
// wave progression → single atomic commit.
func (g *Game) step() []Event {
	in := g.input
	actions := g.pending
	g.pending = nil

	next := integrate(g.snap, in, g.mode, g.cfg)
	cur := &next

	var events []Event
	selfDestruct := false
	for _, a := range actions {
		switch a {
		case ActionFire:
			if cur.Ship.CanFire() && countPlayerShots(cur.Projectiles) < MaxPlayerShots {
				shot := NewShipShot(cur.Ship)
				cur.Projectiles = append(cur.Projectiles, shot)
				cur.Ship.FireCD = FireCooldown
				events = append(events, Event{Name: EventFired, X: shot.X, Y: shot.Y})
			}
		case ActionHyperspace:
			if cur.Ship.CanHyperspace() {
				cur.Ship.X = g.rng.Range(ShipRadius, g.cfg.WorldWidth-ShipRadius)
				cur.Ship.Y = g.rng.Range(ShipRadius, g.cfg.WorldHeight-ShipRadius)
				cur.Ship.VX = 0
				cur.Ship.VY = 0
				cur.Ship.HyperCD = HyperspaceCooldown
				if g.rng.Float() < HyperspaceMishap {
					selfDestruct = true
				}
			}
		}
	}

	if g.mode == ModeFormation {
		g.triggerDives(cur)
		events = append(events, g.enemyFire(cur)...)
	}

	if selfDestruct {
		res := newResolution()
		res.markShipHit(g.rng, cur.Ship)
		events = append(events, res.events...)
		res.events = nil
		cur = applyResolution(cur, res, g.cfg)
	}

	cur, events = g.runBatch(cur, resolveShotsVsAsteroids, events)
	cur, events = g.runBatch(cur, resolveShotsVsInvaders, events)
	cur, events = g.runBatch(cur, resolveShipVsObstacles, events)
	cur, events = g.runBatch(cur, resolveShipVsEnemyShots, events)

	if cur.Status == StatusPlaying && waveCleared(cur, g.mode) {
		nextWave(cur, g.mode, g.rng, g.cfg)
		events = append(events, Event{Name: EventWaveCleared})
	}

	cur.Tick = g.snap.Tick + 1
	g.snap = cur // the single commit for this tick
	return events
}

// runBatch runs one detect pass and, if it found anything, applies it as
// one batch producing the next working snapshot
func (g *Game) runBatch(snap *Snapshot, detect func(*Snapshot, *Rand) *Resolution, events []Event) (*Snapshot, []Event) {
	res := detect(snap, g.rng)
	if res.Empty() {
		return snap, events
	}
	events = append(events, res.events...)
	return applyResolution(snap, res, g.cfg), events
}

// triggerDives rolls the per-tick dive chance for every eligible
// formation enemy, honoring the concurrent-diver cap
func (g *Game) triggerDives(snap *Snapshot) {
	divers := 0
	for _, v := range snap.Invaders {
		if v.State != InvaderFormation {
			divers++
		}
	}
	for i, v := range snap.Invaders {
		if divers >= MaxDivers {
			return
		}
		if v.State != InvaderFormation {
			continue
		}
		if g.rng.Float() < DiveChance {
			snap.Invaders[i] = v.StartDive(g.cfg)
			divers++
		}
	}
}

// enemyFire lets diving enemies shoot straight at the ship's current
// position
func (g *Game) enemyFire(snap *Snapshot) []Event {
	var events []Event
	for _, v := range snap.Invaders {
		if v.State != InvaderDiving {
			continue
		}
		if g.rng.Float() >= DiveFireChance {
			continue
		}
		shot := NewEnemyShot(v.X, v.Y, snap.Ship.X, snap.Ship.Y)
		snap.Projectiles = append(snap.Projectiles, shot)
		events = append(events, Event{Name: EventFired, X: shot.X, Y: shot.Y})
	}
	return events
}

func countPlayerShots(projectiles []Projectile) int {
	n := 0
	for _, p := range projectiles {
		if p.Owner == OwnerPlayer {
			n++
		}
	}
	return n
}

// broadcastState sends the committed snapshot to every attached client as
// a binary msgpack message
func (g *Game) broadcastState() {
	if len(g.clients) == 0 {
		return
	}
	data, err := msgpack.Marshal(g.snap.ToState())
	if err != nil {
		log.Printf("state marshal error: %v", err)
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a JSON envelope to every attached client
func (g *Game) broadcastMsg(msg Envelope) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("event marshal error: %v", err)
		return
	}
	for _, client := range g.clients {
		if c, ok := client.(*Client); ok {
			c.SendRaw(data)
		} else {
			client.SendJSON(msg)
		}
	}
}
