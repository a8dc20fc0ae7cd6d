package entity

// MotionState is the vertical state of the agent
type MotionState int

const (
	Grounded MotionState = iota
	Airborne
)

// String returns the string representation of the motion state
func (s MotionState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	default:
		return "Unknown"
	}
}

// Agent is the single controllable character.
// Its collision volume is an upright capsule approximated by Radius
// (horizontal probes) and Height (landing).
type Agent struct {
	Position Vec3

	// HorizontalVelocity is the X/Z displacement applied during the last frame
	HorizontalVelocity Vec2
	VerticalVelocity   float64

	Radius float64
	Height float64

	Grounded bool
	Jumping  bool
}

// NewAgent creates an agent standing at spawn
func NewAgent(spawn Vec3, radius, height float64) *Agent {
	return &Agent{
		Position: spawn,
		Radius:   radius,
		Height:   height,
		Grounded: true,
	}
}

// HalfHeight returns half of the agent height
func (a *Agent) HalfHeight() float64 {
	return a.Height / 2
}

// BottomY returns the height of the agent's feet
func (a *Agent) BottomY() float64 {
	return a.Position.Y - a.HalfHeight()
}

// State returns the current motion state
func (a *Agent) State() MotionState {
	if a.Grounded {
		return Grounded
	}
	return Airborne
}
