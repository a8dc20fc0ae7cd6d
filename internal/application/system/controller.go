package system

import (
	"context"
	"errors"
	"log"
	"reflect"

	"github.com/younwookim/raywalk/internal/application/state"
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// MovementController resolves one frame of agent movement against static terrain.
type MovementController interface {
	// ResolveFrame applies one frame of input and returns the resulting agent.
	// It must be called exactly once per rendered frame.
	ResolveFrame(input InputState, obstacles *entity.ObstacleSet) entity.Agent

	// Agent returns the current agent state
	Agent() entity.Agent

	// Lifecycle reports whether the controller is ready to move the agent
	Lifecycle() state.Lifecycle
}

// Model is the agent's visual representation.
// It supplies the starting position and mirrors every resolved position.
type Model interface {
	Position() entity.Vec3
	SetPosition(p entity.Vec3)
}

// ModelLoader produces the agent's model, possibly slowly
type ModelLoader func(ctx context.Context) (Model, error)

// FrameReport summarizes the last resolved frame
type FrameReport struct {
	Frame   uint64
	Blocked Direction
	Jumped  bool
	Landing Landing
}

// ErrNoModel is reported when a loader succeeds without producing a model
var ErrNoModel = errors.New("loader returned no model")

type loadResult struct {
	model Model
	err   error
}

// RaycastController moves the agent with ray probes: four horizontal probes
// block walls, a downward probe finds the landing surface.
//
// All methods except LoadModelAsync's loader run on the frame goroutine.
type RaycastController struct {
	agent     *entity.Agent
	model     Model
	lifecycle state.Lifecycle
	pending   chan loadResult

	horizontal *HorizontalResolver
	vertical   *VerticalIntegrator
	landing    *LandingResolver

	frames uint64
	last   FrameReport
}

// NewRaycastController creates an uninitialized controller with the agent at spawn
func NewRaycastController(cfg *config.PhysicsConfig, spawn entity.Vec3) *RaycastController {
	c := &RaycastController{
		agent: entity.NewAgent(spawn, cfg.Agent.Radius, cfg.Agent.Height),
	}
	c.Retune(cfg)
	return c
}

// Retune replaces the motion constants and agent dimensions.
// Position and velocities are kept.
func (c *RaycastController) Retune(cfg *config.PhysicsConfig) {
	c.horizontal = NewHorizontalResolver(cfg)
	c.vertical = NewVerticalIntegrator(cfg)
	c.landing = NewLandingResolver(cfg)
	c.agent.Radius = cfg.Agent.Radius
	c.agent.Height = cfg.Agent.Height
}

// Attach readies the controller with the given model.
// The agent takes over the model's position.
func (c *RaycastController) Attach(m Model) {
	if isNilModel(m) || c.lifecycle == state.Ready {
		return
	}
	c.model = m
	c.agent.Position = m.Position()
	c.lifecycle = state.Ready
	c.pending = nil
	log.Printf("Agent model attached at (%.2f, %.2f, %.2f)", c.agent.Position.X, c.agent.Position.Y, c.agent.Position.Z)
}

// LoadModelAsync runs loader on its own goroutine.
// The result is attached at the start of the first frame after it arrives;
// a failed load is logged and the controller stays inert.
func (c *RaycastController) LoadModelAsync(ctx context.Context, loader ModelLoader) {
	if c.lifecycle == state.Ready || c.pending != nil {
		return
	}
	pending := make(chan loadResult, 1)
	c.pending = pending
	go func() {
		m, err := loader(ctx)
		pending <- loadResult{model: m, err: err}
	}()
}

// Loading reports whether a model load is in flight
func (c *RaycastController) Loading() bool {
	return c.pending != nil
}

func (c *RaycastController) poll() {
	if c.pending == nil {
		return
	}
	select {
	case res := <-c.pending:
		c.pending = nil
		if res.err == nil && isNilModel(res.model) {
			res.err = ErrNoModel
		}
		if res.err != nil {
			log.Printf("Agent model failed to load: %v", res.err)
			return
		}
		c.Attach(res.model)
	default:
	}
}

// ResolveFrame implements MovementController.
// Before a model is attached it does nothing.
func (c *RaycastController) ResolveFrame(input InputState, obstacles *entity.ObstacleSet) entity.Agent {
	c.poll()
	if c.lifecycle != state.Ready {
		return *c.agent
	}

	c.frames++
	report := FrameReport{Frame: c.frames}

	report.Blocked = c.horizontal.Resolve(c.agent, input, obstacles)
	report.Jumped = c.vertical.Step(c.agent, input.Jump)
	report.Landing = c.landing.Resolve(c.agent, obstacles)

	c.model.SetPosition(c.agent.Position)
	c.last = report
	return *c.agent
}

// Agent implements MovementController
func (c *RaycastController) Agent() entity.Agent {
	return *c.agent
}

// Lifecycle implements MovementController
func (c *RaycastController) Lifecycle() state.Lifecycle {
	return c.lifecycle
}

// Model returns the attached model, nil before the controller is ready
func (c *RaycastController) Model() Model {
	return c.model
}

// LastFrame returns the report of the most recent resolved frame
func (c *RaycastController) LastFrame() FrameReport {
	return c.last
}

// isNilModel also catches a nil pointer stored in the interface
func isNilModel(m Model) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// PointModel is a model without visuals, used for headless runs
type PointModel struct {
	pos entity.Vec3
}

// NewPointModel creates a point model at p
func NewPointModel(p entity.Vec3) *PointModel {
	return &PointModel{pos: p}
}

// Position implements Model
func (m *PointModel) Position() entity.Vec3 {
	return m.pos
}

// SetPosition implements Model
func (m *PointModel) SetPosition(p entity.Vec3) {
	m.pos = p
}
