package main

// InputState holds the held controls sampled once at the start of each
// tick. Keyboard, on-screen joystick and button pads all normalize to the
// same vocabulary before reaching the simulation.
type InputState struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	HasHeading  bool // joystick-style controls send an absolute heading
	Heading     float64
}

// Action is an edge-triggered command. Actions are accepted as they occur
// and applied at the next tick boundary; an action that is meaningless in
// the current status is a no-op, not an error.
type Action int

const (
	ActionFire Action = iota
	ActionHyperspace
)
