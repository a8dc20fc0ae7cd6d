package config

// PhysicsConfig is the root config for physics.json.
// Motion constants are per-frame deltas: the controller applies them once per
// update call, so the effective speed follows the display framerate.
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Agent    AgentConfig     `json:"agent"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Physics  PhysicsSettings `json:"physics"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"` // top-down view zoom
}

// AgentConfig sizes the agent's collision capsule
type AgentConfig struct {
	Radius float64 `json:"radius"` // XZ-plane radius
	Height float64 `json:"height"`
}

type MovementConfig struct {
	MoveSpeed       float64 `json:"moveSpeed"`       // units per frame along each axis
	CollisionMargin float64 `json:"collisionMargin"` // added to the radius for wall probes
}

type JumpConfig struct {
	Force float64 `json:"force"` // vertical velocity set on takeoff
}

type PhysicsSettings struct {
	Gravity              float64 `json:"gravity"`              // added to vertical velocity each airborne frame (negative)
	LandingTolerance     float64 `json:"landingTolerance"`     // how far above the feet a surface may be and still count
	LandingProbeDistance float64 `json:"landingProbeDistance"` // downward probe length
}

// CollisionDistance returns the horizontal probe length
func (c *PhysicsConfig) CollisionDistance() float64 {
	return c.Agent.Radius + c.Movement.CollisionMargin
}
