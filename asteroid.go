package main

import "math"

// AsteroidSize is the split tier of an asteroid. Splits strictly decrease
// the tier; the smallest tier never produces children.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

const (
	AsteroidSplitChildren = 2
	AsteroidShapeVerts    = 10
	AsteroidSpinMin       = 0.5
	AsteroidSpinMax       = 2.0
)

var asteroidRadii = map[AsteroidSize]float64{
	AsteroidSmall:  8.0,
	AsteroidMedium: 16.0,
	AsteroidLarge:  32.0,
}

// Smaller rocks fly faster
var asteroidSpeeds = map[AsteroidSize]float64{
	AsteroidSmall:  95.0,
	AsteroidMedium: 65.0,
	AsteroidLarge:  40.0,
}

var asteroidScores = map[AsteroidSize]int{
	AsteroidSmall:  100,
	AsteroidMedium: 50,
	AsteroidLarge:  20,
}

// Asteroid drifts in a straight line, wraps at the world edges and splits
// into two smaller rocks when destroyed.
type Asteroid struct {
	ID       string
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Spin     float64
	Size     AsteroidSize
	HP       int
	Shape    []float64 // vertex distances from center, irregular outline
}

// NewAsteroid spawns an asteroid of the given size at (x, y) heading in a
// random direction with size-scaled speed
func NewAsteroid(rng *Rand, x, y float64, size AsteroidSize) Asteroid {
	angle := rng.Angle()
	speed := asteroidSpeeds[size] * rng.Range(0.8, 1.2)
	spin := rng.Range(AsteroidSpinMin, AsteroidSpinMax)
	if rng.Float() < 0.5 {
		spin = -spin
	}
	shape := make([]float64, AsteroidShapeVerts)
	for i := range shape {
		shape[i] = asteroidRadii[size] * rng.Range(0.7, 1.3)
	}
	return Asteroid{
		ID:       GenerateID(4),
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Rotation: rng.Angle(),
		Spin:     spin,
		Size:     size,
		HP:       1,
		Shape:    shape,
	}
}

// NewAsteroidAtEdge spawns a large asteroid on a random world edge aimed
// at a jittered point near the center, so wave spawns drift inward and
// never materialize on top of the ship
func NewAsteroidAtEdge(rng *Rand, cfg Config) Asteroid {
	var x, y float64
	switch rng.Intn(4) {
	case 0: // left
		x = 0
		y = rng.Float() * cfg.WorldHeight
	case 1: // right
		x = cfg.WorldWidth
		y = rng.Float() * cfg.WorldHeight
	case 2: // top
		x = rng.Float() * cfg.WorldWidth
		y = 0
	default: // bottom
		x = rng.Float() * cfg.WorldWidth
		y = cfg.WorldHeight
	}

	a := NewAsteroid(rng, x, y, AsteroidLarge)
	targetX := cfg.WorldWidth/2 + rng.Range(-cfg.WorldWidth/4, cfg.WorldWidth/4)
	targetY := cfg.WorldHeight/2 + rng.Range(-cfg.WorldHeight/4, cfg.WorldHeight/4)
	angle := math.Atan2(targetY-y, targetX-x)
	speed := asteroidSpeeds[AsteroidLarge] * rng.Range(0.8, 1.2)
	a.VX = math.Cos(angle) * speed
	a.VY = math.Sin(angle) * speed
	return a
}

// Radius returns the collision radius for the asteroid's size tier
func (a Asteroid) Radius() float64 {
	return asteroidRadii[a.Size]
}

// Score returns the points awarded for destroying the asteroid
func (a Asteroid) Score() int {
	return asteroidScores[a.Size]
}

// Advanced returns the asteroid after one physics tick
func (a Asteroid) Advanced(cfg Config) Asteroid {
	dt := 1.0 / float64(TickRate)
	a.X = WrapCoord(a.X+a.VX*dt, cfg.WorldWidth)
	a.Y = WrapCoord(a.Y+a.VY*dt, cfg.WorldHeight)
	a.Rotation += a.Spin * dt
	return a
}

// Split returns the children spawned when the asteroid is destroyed: two
// rocks one tier down, at jittered offsets inside the parent's footprint,
// each with an independent random velocity. Small asteroids are terminal.
func (a Asteroid) Split(rng *Rand) []Asteroid {
	if a.Size <= AsteroidSmall {
		return nil
	}
	children := make([]Asteroid, 0, AsteroidSplitChildren)
	for i := 0; i < AsteroidSplitChildren; i++ {
		off := a.Radius() * 0.5 * rng.Float()
		ang := rng.Angle()
		children = append(children, NewAsteroid(rng,
			a.X+math.Cos(ang)*off,
			a.Y+math.Sin(ang)*off,
			a.Size-1))
	}
	return children
}

// ToState converts to protocol state
func (a Asteroid) ToState() AsteroidState {
	return AsteroidState{
		ID:    a.ID,
		X:     round1(a.X),
		Y:     round1(a.Y),
		R:     round1(a.Rotation),
		Size:  int(a.Size),
		Shape: a.Shape,
	}
}
