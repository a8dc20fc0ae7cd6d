package system

import (
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// VerticalIntegrator applies jump impulses and gravity.
// It never decides landing; it only leaves the ground on a jump.
type VerticalIntegrator struct {
	gravity   float64
	jumpForce float64
}

// NewVerticalIntegrator creates an integrator from the jump and gravity tuning
func NewVerticalIntegrator(cfg *config.PhysicsConfig) *VerticalIntegrator {
	return &VerticalIntegrator{
		gravity:   cfg.Physics.Gravity,
		jumpForce: cfg.Jump.Force,
	}
}

// Step advances the vertical motion by one frame and reports whether a jump started
func (v *VerticalIntegrator) Step(agent *entity.Agent, jump bool) bool {
	jumped := false
	if agent.Grounded && jump {
		agent.VerticalVelocity = v.jumpForce
		agent.Jumping = true
		agent.Grounded = false
		jumped = true
	}

	// Semi-implicit Euler: position uses the velocity from before gravity
	if agent.Jumping || !agent.Grounded {
		agent.Position.Y += agent.VerticalVelocity
		agent.VerticalVelocity += v.gravity
	}

	return jumped
}
