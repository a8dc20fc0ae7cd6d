package system

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// LoadCourse converts a CourseConfig into a Course entity
func LoadCourse(cfg *config.CourseConfig) (*entity.Course, error) {
	obstacles := make([]entity.Obstacle, 0, len(cfg.Platforms))
	for i, p := range cfg.Platforms {
		color, err := parseColor(p.Color)
		if err != nil {
			return nil, fmt.Errorf("platform %d (%s): %w", i, p.Name, err)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("platform-%d", i)
		}
		obstacles = append(obstacles, entity.NewPlatform(name, p.X, p.Z, cfg.Ground.Y, p.Height, p.Width, p.Depth, color))
	}

	return &entity.Course{
		ID:          cfg.ID,
		Name:        cfg.Name,
		Spawn:       entity.Vec3{X: cfg.Spawn.X, Y: cfg.Spawn.Y, Z: cfg.Spawn.Z},
		Obstacles:   entity.NewObstacleSet(cfg.Ground.Y, obstacles...),
		GroundWidth: cfg.Ground.Width,
		GroundDepth: cfg.Ground.Depth,
	}, nil
}

// parseColor reads "#rrggbb"; an empty string is grey
func parseColor(s string) (uint32, error) {
	if s == "" {
		return 0x808080, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return uint32(v), nil
}
