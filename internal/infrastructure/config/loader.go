package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// PhysicsFile is the tuning file name inside the config directory
const PhysicsFile = "physics.json"

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics *PhysicsConfig
	Course  *CourseConfig
}

// Loader loads game configuration using fs.FS interface.
// Tuning is JSON, courses are YAML.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory or label the loader was created with
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadPhysics loads physics.json.
// Fields missing from the file keep their Default() values.
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	data, err := fs.ReadFile(l.fsys, PhysicsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PhysicsFile, err)
	}
	return ParsePhysics(data)
}

// ParsePhysics decodes and validates physics.json content
func ParsePhysics(data []byte) (*PhysicsConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PhysicsFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", PhysicsFile, err)
	}
	return cfg, nil
}

// LoadCourse loads a course YAML file
func (l *Loader) LoadCourse(name string) (*CourseConfig, error) {
	path := "courses/" + name + ".yaml"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course %s: %w", name, err)
	}

	var cfg CourseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse course %s: %w", name, err)
	}
	if cfg.ID == "" {
		cfg.ID = name
	}

	for i, p := range cfg.Platforms {
		if p.Height <= 0 || p.Width <= 0 || p.Depth <= 0 {
			return nil, fmt.Errorf("course %s: platform %d (%s): %w: dimensions must be positive",
				name, i, p.Name, ErrInvalidConfig)
		}
	}

	return &cfg, nil
}

// LoadAll loads the tuning and the named course
func (l *Loader) LoadAll(course string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	courseCfg, err := l.LoadCourse(course)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics: physics,
		Course:  courseCfg,
	}, nil
}
