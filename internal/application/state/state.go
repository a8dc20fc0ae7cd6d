package state

// GameState represents the current state of the playing scene
type GameState int

const (
	StateLoading GameState = iota // waiting for the agent's model
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Lifecycle is the readiness of a movement controller.
// A controller moves from Uninitialized to Ready once its visual
// representation is attached and never goes back.
type Lifecycle int

const (
	Uninitialized Lifecycle = iota
	Ready
)

// String returns the string representation of the lifecycle
func (l Lifecycle) String() string {
	switch l {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	default:
		return "Unknown"
	}
}
