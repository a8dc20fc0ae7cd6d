package system

import (
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

func createTestConfig() *config.PhysicsConfig {
	return config.Default()
}

// createDemoObstacles builds the three-platform course:
// low x[1,9] z[-4,4] h1, middle x[13,17] z[3,7] h3, high x[-15,-5] z[-10,0] h5
func createDemoObstacles() *entity.ObstacleSet {
	return entity.NewObstacleSet(0,
		entity.NewPlatform("low", 5, 0, 0, 1, 8, 8, 0x8b4513),
		entity.NewPlatform("middle", 15, 5, 0, 3, 4, 4, 0xffa500),
		entity.NewPlatform("high", -10, -5, 0, 5, 10, 10, 0x008000),
	)
}

// createReadyController returns a controller whose model already sits at spawn
func createReadyController(spawn entity.Vec3) *RaycastController {
	c := NewRaycastController(createTestConfig(), spawn)
	c.Attach(NewPointModel(spawn))
	return c
}

// standingAgent returns a grounded agent resting on the ground plane at (x, z)
func standingAgent(x, z float64) *entity.Agent {
	return entity.NewAgent(entity.Vec3{X: x, Y: 0.5, Z: z}, 0.5, 1)
}
