package system

import (
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a logical input the controller understands
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionJump

	actionCount
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionForward:
		return "Forward"
	case ActionBack:
		return "Back"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// InputState holds the input for one frame
type InputState struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
}

// Active reports whether the action is held
func (s InputState) Active(a Action) bool {
	switch a {
	case ActionForward:
		return s.Forward
	case ActionBack:
		return s.Back
	case ActionLeft:
		return s.Left
	case ActionRight:
		return s.Right
	case ActionJump:
		return s.Jump
	default:
		return false
	}
}

// Any reports whether any action is held
func (s InputState) Any() bool {
	return s.Forward || s.Back || s.Left || s.Right || s.Jump
}

// KeyState is the held/released state of every action.
// Press and Release may be called from event callbacks on any goroutine while
// the frame loop takes snapshots; the last write wins and a frame may see an
// event one frame late.
type KeyState struct {
	down [actionCount]atomic.Bool
}

// Set records the action as held or released
func (k *KeyState) Set(a Action, held bool) {
	if a < 0 || a >= actionCount {
		return
	}
	k.down[a].Store(held)
}

// Press marks the action as held
func (k *KeyState) Press(a Action) {
	k.Set(a, true)
}

// Release marks the action as released
func (k *KeyState) Release(a Action) {
	k.Set(a, false)
}

// Reset releases every action
func (k *KeyState) Reset() {
	for i := range k.down {
		k.down[i].Store(false)
	}
}

// Snapshot reads the current state of every action
func (k *KeyState) Snapshot() InputState {
	return InputState{
		Forward: k.down[ActionForward].Load(),
		Back:    k.down[ActionBack].Load(),
		Left:    k.down[ActionLeft].Load(),
		Right:   k.down[ActionRight].Load(),
		Jump:    k.down[ActionJump].Load(),
	}
}

// DefaultBindings maps WASD, the arrow keys and space to actions
func DefaultBindings() map[ebiten.Key]Action {
	return map[ebiten.Key]Action{
		ebiten.KeyW:          ActionForward,
		ebiten.KeyS:          ActionBack,
		ebiten.KeyA:          ActionLeft,
		ebiten.KeyD:          ActionRight,
		ebiten.KeyArrowUp:    ActionForward,
		ebiten.KeyArrowDown:  ActionBack,
		ebiten.KeyArrowLeft:  ActionLeft,
		ebiten.KeyArrowRight: ActionRight,
		ebiten.KeySpace:      ActionJump,
	}
}

// InputSystem is the keyboard input collaborator.
// It turns ebiten key press/release events into a KeyState; the movement
// controller only ever sees the resulting InputState.
type InputSystem struct {
	bindings map[ebiten.Key]Action
	keys     KeyState
	buf      []ebiten.Key
}

// NewInputSystem creates a new input system with the given bindings.
// A nil map uses DefaultBindings.
func NewInputSystem(bindings map[ebiten.Key]Action) *InputSystem {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &InputSystem{bindings: bindings}
}

// GetInput applies this tick's key events and returns the current input state
func (s *InputSystem) GetInput() InputState {
	s.buf = inpututil.AppendJustPressedKeys(s.buf[:0])
	for _, k := range s.buf {
		s.handleKey(k, true)
	}
	s.buf = inpututil.AppendJustReleasedKeys(s.buf[:0])
	for _, k := range s.buf {
		s.handleKey(k, false)
	}
	return s.keys.Snapshot()
}

// Keys exposes the underlying key state
func (s *InputSystem) Keys() *KeyState {
	return &s.keys
}

func (s *InputSystem) handleKey(k ebiten.Key, down bool) {
	a, ok := s.bindings[k]
	if !ok {
		return
	}
	s.keys.Set(a, down)
}
