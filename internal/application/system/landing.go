package system

import (
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

var down = entity.Vec3{Y: -1}

// Landing describes the support found under the agent in one frame
type Landing struct {
	SurfaceY     float64 // accepted support height (ground plane when nothing was accepted)
	GroundLevelY float64 // agent center height when standing on SurfaceY
	Hit          bool    // the downward probe found an obstacle
	Accepted     bool    // the hit was low enough to stand on
	Obstacle     int     // index of the accepted obstacle, -1 for the ground plane
	Landed       bool    // the agent was clamped onto the support this frame
}

// LandingResolver finds the surface under the agent and owns the grounded flag
type LandingResolver struct {
	tolerance     float64
	probeDistance float64
}

// NewLandingResolver creates a resolver from the landing tuning
func NewLandingResolver(cfg *config.PhysicsConfig) *LandingResolver {
	return &LandingResolver{
		tolerance:     cfg.Physics.LandingTolerance,
		probeDistance: cfg.Physics.LandingProbeDistance,
	}
}

// Resolve clamps a descending agent onto its support or marks it airborne
func (r *LandingResolver) Resolve(agent *entity.Agent, obstacles *entity.ObstacleSet) Landing {
	l := Landing{SurfaceY: obstacles.GroundY(), Obstacle: -1}

	if hit, ok := RayProbe(obstacles, agent.Position, down, r.probeDistance); ok {
		l.Hit = true
		// Surfaces above the feet would pull the agent up through geometry
		if hit.Point.Y < agent.BottomY()+r.tolerance {
			l.SurfaceY = hit.Point.Y
			l.Accepted = true
			l.Obstacle = hit.Index
		}
	}
	l.GroundLevelY = l.SurfaceY + agent.HalfHeight()

	if agent.VerticalVelocity <= 0 && agent.Position.Y <= l.GroundLevelY {
		agent.Position.Y = l.GroundLevelY
		agent.VerticalVelocity = 0
		agent.Jumping = false
		agent.Grounded = true
		l.Landed = true
	} else if agent.Position.Y > l.GroundLevelY {
		agent.Grounded = false
	}

	return l
}
