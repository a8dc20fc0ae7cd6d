package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Default returns the stock tuning: a 1-unit tall agent with a 0.5 radius,
// 0.05 units/frame walking speed, 1.2 jump impulse and -0.1 gravity.
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:   640,
			ScreenHeight:  360,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 12,
		},
		Agent: AgentConfig{
			Radius: 0.5,
			Height: 1,
		},
		Movement: MovementConfig{
			MoveSpeed:       0.05,
			CollisionMargin: 0.1,
		},
		Jump: JumpConfig{
			Force: 1.2,
		},
		Physics: PhysicsSettings{
			Gravity:              -0.1,
			LandingTolerance:     0.2,
			LandingProbeDistance: 10,
		},
	}
}

// Validate checks that the tuning can drive the controller
func (c *PhysicsConfig) Validate() error {
	switch {
	case c.Agent.Radius <= 0:
		return fmt.Errorf("%w: agent.radius must be positive, got %v", ErrInvalidConfig, c.Agent.Radius)
	case c.Agent.Height <= 0:
		return fmt.Errorf("%w: agent.height must be positive, got %v", ErrInvalidConfig, c.Agent.Height)
	case c.Movement.MoveSpeed < 0:
		return fmt.Errorf("%w: movement.moveSpeed must not be negative, got %v", ErrInvalidConfig, c.Movement.MoveSpeed)
	case c.Movement.CollisionMargin < 0:
		return fmt.Errorf("%w: movement.collisionMargin must not be negative, got %v", ErrInvalidConfig, c.Movement.CollisionMargin)
	case c.Jump.Force <= 0:
		return fmt.Errorf("%w: jump.force must be positive, got %v", ErrInvalidConfig, c.Jump.Force)
	case c.Physics.Gravity >= 0:
		return fmt.Errorf("%w: physics.gravity must be negative, got %v", ErrInvalidConfig, c.Physics.Gravity)
	case c.Physics.LandingTolerance < 0:
		return fmt.Errorf("%w: physics.landingTolerance must not be negative, got %v", ErrInvalidConfig, c.Physics.LandingTolerance)
	case c.Physics.LandingProbeDistance <= 0:
		return fmt.Errorf("%w: physics.landingProbeDistance must be positive, got %v", ErrInvalidConfig, c.Physics.LandingProbeDistance)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: display.framerate must be positive, got %v", ErrInvalidConfig, c.Display.Framerate)
	}
	return nil
}
