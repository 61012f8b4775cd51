package main

import "math"

// InvaderState is the behavior state of a formation enemy
type InvaderState int

const (
	InvaderFormation InvaderState = 0
	InvaderDiving    InvaderState = 1
	InvaderReturning InvaderState = 2
)

// InvaderType sets hit-points and score value
type InvaderType int

const (
	InvaderGrunt  InvaderType = 0
	InvaderRaider InvaderType = 1
	InvaderBoss   InvaderType = 2
)

const (
	InvaderRadius = 10.0

	DiveChance     = 0.002 // per-tick chance an eligible enemy starts a dive
	MaxDivers      = 3     // formation enemies diving at once
	DiveStep       = 0.008 // path progress per tick
	DivePathLen    = 64    // points sampled along a swoop
	DiveSweeps     = 2.5   // sinusoid periods across the descent
	DiveAmplitude  = 140.0
	DiveDepthFrac  = 0.7   // fraction of world height descended
	DiveFireChance = 0.015 // per-tick chance to shoot while diving

	ReturnSpeed   = 120.0 // px/s back toward the anchor
	AnchorEpsilon = 2.0

	GroupSweepSpeed = 24.0 // px/s shared left-right oscillation
	GroupSweepBound = 56.0
)

var invaderHP = map[InvaderType]int{
	InvaderGrunt:  1,
	InvaderRaider: 1,
	InvaderBoss:   2,
}

var invaderScores = map[InvaderType]int{
	InvaderGrunt:  100,
	InvaderRaider: 160,
	InvaderBoss:   400,
}

// Vec is a 2D point
type Vec struct {
	X, Y float64
}

// Invader is a formation enemy. In formation its position is slaved to its
// anchor plus the shared group offset; diving follows a pre-sampled swoop
// path; returning steers linearly back to the anchor slot and snaps onto
// it exactly.
type Invader struct {
	ID       string
	Type     InvaderType
	State    InvaderState
	X, Y     float64
	AnchorX  float64
	AnchorY  float64
	HP       int
	Path     []Vec   // sampled swoop path while diving
	Progress float64 // dive progress fraction in [0, 1]
}

// NewInvader creates a formation enemy parked on its anchor
func NewInvader(typ InvaderType, anchorX, anchorY float64) Invader {
	return Invader{
		ID:      GenerateID(4),
		Type:    typ,
		State:   InvaderFormation,
		X:       anchorX,
		Y:       anchorY,
		AnchorX: anchorX,
		AnchorY: anchorY,
		HP:      invaderHP[typ],
	}
}

// Score returns the points awarded for destroying the invader
func (v Invader) Score() int {
	return invaderScores[v.Type]
}

// makeDivePath samples a swoop: a sinusoidal horizontal sweep over a
// linear vertical descent. The sweep side depends on which half of the
// screen the enemy starts in.
func makeDivePath(startX, startY float64, cfg Config) []Vec {
	side := 1.0
	if startX > cfg.WorldWidth/2 {
		side = -1.0
	}
	depth := cfg.WorldHeight * DiveDepthFrac
	path := make([]Vec, DivePathLen)
	for i := range path {
		t := float64(i) / float64(DivePathLen-1)
		path[i] = Vec{
			X: startX + side*DiveAmplitude*math.Sin(2*math.Pi*DiveSweeps*t),
			Y: startY + depth*t,
		}
	}
	return path
}

// StartDive switches the invader to diving along a freshly sampled path
func (v Invader) StartDive(cfg Config) Invader {
	v.State = InvaderDiving
	v.Progress = 0
	v.Path = makeDivePath(v.X, v.Y, cfg)
	return v
}

// Advanced returns the invader after one behavior tick. groupOffset is the
// shared formation sweep offset computed once per tick for the whole group.
func (v Invader) Advanced(groupOffset float64, cfg Config) Invader {
	switch v.State {
	case InvaderDiving:
		v.Progress += DiveStep
		if v.Progress >= 1 {
			v.Progress = 1
			v.State = InvaderReturning
			v.Path = nil
			return v
		}
		idx := int(v.Progress * float64(len(v.Path)-1))
		v.X = v.Path[idx].X
		v.Y = v.Path[idx].Y

	case InvaderReturning:
		dt := 1.0 / float64(TickRate)
		tx := v.AnchorX + groupOffset
		ty := v.AnchorY
		dx := tx - v.X
		dy := ty - v.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := ReturnSpeed * dt
		if dist <= AnchorEpsilon || dist <= step {
			// Snap exactly onto the slot, no residual offset
			v.X = tx
			v.Y = ty
			v.State = InvaderFormation
		} else {
			v.X += dx / dist * step
			v.Y += dy / dist * step
		}

	default: // formation: lockstep with the group
		v.X = v.AnchorX + groupOffset
		v.Y = v.AnchorY
	}
	return v
}

// ToState converts to protocol state
func (v Invader) ToState() EnemyState {
	return EnemyState{
		ID:    v.ID,
		X:     round1(v.X),
		Y:     round1(v.Y),
		Type:  int(v.Type),
		State: int(v.State),
	}
}
