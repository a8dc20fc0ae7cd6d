package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/raywalk/internal/domain/entity"
)

func TestHorizontalResolver_OpenSpaceStepsExactly(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	set := createDemoObstacles()

	starts := []entity.Vec3{
		{X: 0, Y: 0.5, Z: 0},
		{X: 0, Y: 0.5, Z: 10},
		{X: 20, Y: 0.5, Z: -8},
		{X: -20, Y: 12, Z: 3.3},
	}
	for _, start := range starts {
		for _, c := range cardinal {
			t.Run(c.name, func(t *testing.T) {
				agent := entity.NewAgent(start, 0.5, 1)
				var input InputState
				switch c.action {
				case ActionForward:
					input.Forward = true
				case ActionBack:
					input.Back = true
				case ActionLeft:
					input.Left = true
				case ActionRight:
					input.Right = true
				}

				blocked := r.Resolve(agent, input, set)

				assert.Equal(t, DirNone, blocked)
				assert.Equal(t, start.Add(c.vec.Scale(0.05)), agent.Position)
				want := c.vec.Scale(0.05).Horizontal()
				assert.InDelta(t, want.X, agent.HorizontalVelocity.X, 1e-12)
				assert.InDelta(t, want.Z, agent.HorizontalVelocity.Z, 1e-12)
			})
		}
	}
}

func TestHorizontalResolver_NoInput(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	agent := standingAgent(3, 3)
	agent.HorizontalVelocity = entity.Vec2{X: 1}

	blocked := r.Resolve(agent, InputState{}, createDemoObstacles())

	assert.Equal(t, DirNone, blocked)
	assert.Equal(t, entity.Vec3{X: 3, Y: 0.5, Z: 3}, agent.Position)
	assert.Equal(t, entity.Vec2{}, agent.HorizontalVelocity)
}

func TestHorizontalResolver_OppositeKeysCancel(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	agent := standingAgent(0, 0)

	r.Resolve(agent, InputState{Forward: true, Back: true, Left: true, Right: true}, entity.NewObstacleSet(0))

	assert.Equal(t, entity.Vec3{Y: 0.5}, agent.Position)
	assert.Equal(t, entity.Vec2{}, agent.HorizontalVelocity)
}

func TestHorizontalResolver_ApproachStopsAtWall(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	set := createDemoObstacles()
	agent := standingAgent(10, 5)

	stopped := false
	for frame := 0; frame < 200; frame++ {
		before := agent.Position.X
		blocked := r.Resolve(agent, InputState{Right: true}, set)

		if 13-before > 0.6+1e-9 {
			require.Equal(t, DirNone, blocked, "blocked early at x=%v", before)
			require.InDelta(t, 0.05, agent.Position.X-before, 1e-12)
			continue
		}
		if blocked.Has(DirRight) {
			stopped = true
			assert.Equal(t, before, agent.Position.X)
		}
	}

	require.True(t, stopped)
	assert.GreaterOrEqual(t, agent.Position.X, 12.4-1e-9)
	assert.Less(t, agent.Position.X, 12.45)
	assert.Equal(t, 5.0, agent.Position.Z)
}

func TestHorizontalResolver_SlidesAlongWall(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	set := createDemoObstacles()
	agent := standingAgent(12.45, 5)

	blocked := r.Resolve(agent, InputState{Back: true, Right: true}, set)

	assert.Equal(t, DirRight, blocked)
	assert.Equal(t, 12.45, agent.Position.X)
	assert.InDelta(t, 5.05, agent.Position.Z, 1e-12)
	assert.InDelta(t, 0.05, agent.HorizontalVelocity.Z, 1e-12)
	assert.Equal(t, 0.0, agent.HorizontalVelocity.X)
}

func TestHorizontalResolver_Corner(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	// East wall x[13,17] z[-10,10], south wall x[-15,15] z[6,10]
	set := entity.NewObstacleSet(0,
		entity.NewPlatform("east", 15, 0, 0, 2, 4, 20, 0),
		entity.NewPlatform("south", 0, 8, 0, 2, 30, 4, 0),
	)

	tests := []struct {
		name        string
		input       InputState
		wantBlocked Direction
		wantPos     entity.Vec3
	}{
		{
			name:        "into the corner",
			input:       InputState{Back: true, Right: true},
			wantBlocked: DirBack | DirRight,
			wantPos:     entity.Vec3{X: 12.5, Y: 0.5, Z: 5.5},
		},
		{
			name:        "out of the corner",
			input:       InputState{Forward: true, Left: true},
			wantBlocked: DirNone,
			wantPos:     entity.Vec3{X: 12.45, Y: 0.5, Z: 5.45},
		},
		{
			name:        "along the east wall",
			input:       InputState{Forward: true, Right: true},
			wantBlocked: DirRight,
			wantPos:     entity.Vec3{X: 12.5, Y: 0.5, Z: 5.45},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := standingAgent(12.5, 5.5)

			blocked := r.Resolve(agent, tt.input, set)

			assert.Equal(t, tt.wantBlocked, blocked)
			assert.InDelta(t, tt.wantPos.X, agent.Position.X, 1e-12)
			assert.InDelta(t, tt.wantPos.Z, agent.Position.Z, 1e-12)
		})
	}
}

func TestHorizontalResolver_PassesOverLowPlatform(t *testing.T) {
	r := NewHorizontalResolver(createTestConfig())
	agent := entity.NewAgent(entity.Vec3{X: 0.5, Y: 1.7, Z: 0}, 0.5, 1)

	blocked := r.Resolve(agent, InputState{Right: true}, createDemoObstacles())

	assert.Equal(t, DirNone, blocked)
	assert.InDelta(t, 0.55, agent.Position.X, 1e-12)
}

func TestHorizontalResolver_ReachFollowsConfig(t *testing.T) {
	obstacles := createDemoObstacles()

	// The low platform's near face is 0.95 away: beyond 0.6, within 1.0
	r := NewHorizontalResolver(createTestConfig())
	agent := standingAgent(0.05, 0)
	assert.Equal(t, DirNone, r.Resolve(agent, InputState{Right: true}, obstacles))

	cfg := createTestConfig()
	cfg.Movement.CollisionMargin = 0.5
	r = NewHorizontalResolver(cfg)
	agent = standingAgent(0.05, 0)
	assert.Equal(t, DirRight, r.Resolve(agent, InputState{Right: true}, obstacles))
	assert.Equal(t, 0.05, agent.Position.X)
}

func TestHorizontalResolver_FastStepTunnelsThinWall(t *testing.T) {
	cfg := createTestConfig()
	cfg.Movement.MoveSpeed = 2
	r := NewHorizontalResolver(cfg)
	wall := entity.NewObstacleSet(0, entity.NewPlatform("sheet", 1, 0, 0, 2, 0.01, 10, 0))
	agent := standingAgent(0, 0)

	blocked := r.Resolve(agent, InputState{Right: true}, wall)

	// The wall is beyond the probe reach before the step and behind the agent after it
	assert.Equal(t, DirNone, blocked)
	assert.Equal(t, 2.0, agent.Position.X)
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{DirNone, "none"},
		{DirForward, "forward"},
		{DirRight, "right"},
		{DirBack | DirRight, "back|right"},
		{DirRight | DirForward | DirLeft, "forward|left|right"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dir.String())
		})
	}
}

func TestDirection_Has(t *testing.T) {
	d := DirForward | DirLeft

	assert.True(t, d.Has(DirForward))
	assert.True(t, d.Has(DirForward|DirLeft))
	assert.True(t, d.Has(DirNone))
	assert.False(t, d.Has(DirRight))
	assert.False(t, d.Has(DirForward|DirBack))
}
