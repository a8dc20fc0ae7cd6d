package system

import (
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// HorizontalResolver turns directional input into wall-blocked steps.
//
// Each requested direction is probed on its own from the agent's current
// position; a hit within radius+margin cancels that step only, so sliding
// diagonally along a wall keeps the free axis. Steps are discrete, so a
// large MoveSpeed can tunnel through geometry thinner than one step.
type HorizontalResolver struct {
	moveSpeed float64
	reach     float64
}

// NewHorizontalResolver creates a resolver from the movement tuning
func NewHorizontalResolver(cfg *config.PhysicsConfig) *HorizontalResolver {
	return &HorizontalResolver{
		moveSpeed: cfg.Movement.MoveSpeed,
		reach:     cfg.CollisionDistance(),
	}
}

// Resolve moves the agent and returns the directions that were requested but blocked
func (r *HorizontalResolver) Resolve(agent *entity.Agent, input InputState, obstacles *entity.ObstacleSet) Direction {
	start := agent.Position
	blocked := DirNone

	for _, c := range cardinal {
		if !input.Active(c.action) {
			continue
		}
		if _, hit := RayProbe(obstacles, agent.Position, c.vec, r.reach); hit {
			blocked |= c.dir
			continue
		}
		agent.Position = agent.Position.Add(c.vec.Scale(r.moveSpeed))
	}

	agent.HorizontalVelocity = agent.Position.Sub(start).Horizontal()
	return blocked
}
