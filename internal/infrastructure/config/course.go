package config

// CourseConfig is the root config for courses/<name>.yaml
type CourseConfig struct {
	ID        string           `yaml:"id"`
	Name      string           `yaml:"name"`
	Ground    GroundConfig     `yaml:"ground"`
	Spawn     PointConfig      `yaml:"spawn"`
	Platforms []PlatformConfig `yaml:"platforms"`
}

// GroundConfig describes the implicit ground plane
type GroundConfig struct {
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
	Depth float64 `yaml:"depth"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PlatformConfig is a box resting on the ground, centered at (X, Z)
type PlatformConfig struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"` // along X
	Depth  float64 `yaml:"depth"` // along Z
	Color  string  `yaml:"color"` // "#rrggbb"
}
