package replay

import (
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	Fw bool `json:"fw,omitempty"` // Forward
	Bk bool `json:"bk,omitempty"` // Back
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	J  bool `json:"j,omitempty"`  // Jump
}

// NewFrameInput converts one frame of controller input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		Fw: in.Forward,
		Bk: in.Back,
		L:  in.Left,
		R:  in.Right,
		J:  in.Jump,
	}
}

// InputState converts the frame back into controller input
func (fi FrameInput) InputState() system.InputState {
	return system.InputState{
		Forward: fi.Fw,
		Back:    fi.Bk,
		Left:    fi.L,
		Right:   fi.R,
		Jump:    fi.J,
	}
}

// ReplayData contains all data needed to replay a session.
// Physics is the tuning in effect when recording started; a replay run with
// different tuning is not expected to reproduce the same path.
type ReplayData struct {
	Version   string                `json:"version"`
	Course    string                `json:"course"`
	StartTime string                `json:"startTime"`
	Physics   *config.PhysicsConfig `json:"physics,omitempty"`
	Frames    []FrameInput          `json:"frames"`
}
