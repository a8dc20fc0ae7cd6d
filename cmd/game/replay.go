package main

import (
	"fmt"
	"log"

	"github.com/younwookim/raywalk/internal/application/replay"
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// SimulationResult is the outcome of a headless replay
type SimulationResult struct {
	Frames    int
	Final     entity.Agent
	Positions []entity.Vec3
	Airborne  int // frames that ended in the air
	Blocked   int // frames where at least one direction was blocked
	Embedded  int // frames that ended with the agent center inside an obstacle
}

// simulate feeds every replayed frame to a fresh controller standing at the
// course spawn, the same way the playing scene does once its model is attached
func simulate(replayer *replay.Replayer, cfg *config.PhysicsConfig, course *entity.Course) SimulationResult {
	controller := system.NewRaycastController(cfg, course.Spawn)
	controller.Attach(system.NewPointModel(course.Spawn))

	result := SimulationResult{
		Positions: make([]entity.Vec3, 0, replayer.TotalFrames()),
	}

	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}

		agent := controller.ResolveFrame(input, course.Obstacles)

		result.Positions = append(result.Positions, agent.Position)
		if !agent.Grounded {
			result.Airborne++
		}
		if controller.LastFrame().Blocked != system.DirNone {
			result.Blocked++
		}
		if course.ObstacleAt(agent.Position) >= 0 {
			result.Embedded++
		}
		result.Frames = replayer.CurrentFrame()
	}
	result.Final = controller.Agent()

	return result
}

// runReplay plays a recording headlessly and logs where the agent ended up.
// The recorded tuning wins over cfg when the file carries one.
func runReplay(filename string, loader *config.Loader, cfg *config.PhysicsConfig) (SimulationResult, error) {
	data, err := replay.LoadReplay(filename)
	if err != nil {
		return SimulationResult{}, err
	}
	if data.Physics != nil {
		cfg = data.Physics
	}

	courseCfg, err := loader.LoadCourse(data.Course)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("replay course: %w", err)
	}
	course, err := system.LoadCourse(courseCfg)
	if err != nil {
		return SimulationResult{}, fmt.Errorf("replay course %s: %w", data.Course, err)
	}

	result := simulate(replay.NewReplayer(*data), cfg, course)
	p := result.Final.Position
	log.Printf("Replayed %s: %d frames on %s, final (%.3f, %.3f, %.3f) %s",
		filename, result.Frames, course.Name, p.X, p.Y, p.Z, result.Final.State())
	if result.Embedded > 0 {
		log.Printf("Agent ended %d frames inside an obstacle", result.Embedded)
	}
	return result, nil
}
