package main

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/raywalk/internal/application/replay"
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

func embeddedLoader(t *testing.T) *config.Loader {
	t.Helper()
	loader, err := newLoader("")
	require.NoError(t, err)
	return loader
}

// loadDemoCourse loads the shipped three-platform course
func loadDemoCourse(t *testing.T) (*config.PhysicsConfig, *entity.Course) {
	t.Helper()
	cfg, err := embeddedLoader(t).LoadAll("demo")
	require.NoError(t, err)
	course, err := system.LoadCourse(cfg.Course)
	require.NoError(t, err)
	return cfg.Physics, course
}

// scriptedReplay builds a recording from a per-frame input function
func scriptedReplay(frames int, course string, input func(i int) system.InputState) replay.ReplayData {
	data := replay.ReplayData{Version: replay.Version, Course: course}
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, replay.NewFrameInput(i, input(i)))
	}
	return data
}

func TestNewLoader_BasePath(t *testing.T) {
	assert.Equal(t, embeddedConfigs, embeddedLoader(t).BasePath())

	dir := t.TempDir()
	loader, err := newLoader(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, loader.BasePath())
}

func TestEmbeddedConfigs(t *testing.T) {
	names, err := fs.Glob(configFS, "configs/courses/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	loader := embeddedLoader(t)
	for _, name := range names {
		id := filepath.Base(name)
		id = id[:len(id)-len(".yaml")]
		t.Run(id, func(t *testing.T) {
			cfg, err := loader.LoadAll(id)
			require.NoError(t, err)
			_, err = system.LoadCourse(cfg.Course)
			assert.NoError(t, err)
		})
	}
}

func TestReplayIdleAgent_Settles(t *testing.T) {
	cfg, course := loadDemoCourse(t)
	replayer := replay.NewReplayer(replay.CreateTestReplayData(120, system.InputState{}))

	result := simulate(replayer, cfg, course)

	require.Equal(t, 120, result.Frames)
	// Spawned at y=0.01, snapped onto the ground on the first frame
	for i, p := range result.Positions {
		assert.Equal(t, entity.Vec3{Y: 0.5}, p, "frame %d", i)
	}
	assert.Equal(t, 0, result.Airborne)
	assert.Equal(t, 0.0, result.Final.VerticalVelocity)
}

func TestReplayDeterminism(t *testing.T) {
	cfg, course := loadDemoCourse(t)
	data := scriptedReplay(400, "demo", func(i int) system.InputState {
		return system.InputState{
			Right:   true,
			Back:    i%2 == 0,
			Jump:    i%50 == 5,
			Forward: i > 300,
		}
	})

	result1 := simulate(replay.NewReplayer(data), cfg, course)
	result2 := simulate(replay.NewReplayer(data), cfg, course)

	require.Equal(t, len(result1.Positions), len(result2.Positions))
	for i := range result1.Positions {
		assert.Equal(t, result1.Positions[i], result2.Positions[i], "position at frame %d should match", i)
	}
	assert.Equal(t, result1.Final, result2.Final)
}

func TestReplayWalkIntoMiddlePlatform(t *testing.T) {
	cfg, course := loadDemoCourse(t)
	// Walk back (+Z) to z=5, then right into the middle platform's west face at x=13
	data := scriptedReplay(400, "demo", func(i int) system.InputState {
		if i < 100 {
			return system.InputState{Back: true}
		}
		return system.InputState{Right: true}
	})

	result := simulate(replay.NewReplayer(data), cfg, course)

	assert.InDelta(t, 5.0, result.Final.Position.Z, 1e-9)
	assert.GreaterOrEqual(t, result.Final.Position.X, 12.4-1e-9)
	assert.Less(t, result.Final.Position.X, 12.45)
	assert.Equal(t, 0.5, result.Final.Position.Y)
	assert.Positive(t, result.Blocked)
}

func TestRecorderAndReplayer(t *testing.T) {
	cfg, course := loadDemoCourse(t)
	tmpFile := filepath.Join(t.TempDir(), "run.json")

	rec := replay.NewRecorder(course.ID, cfg)
	for i := 0; i < 200; i++ {
		rec.RecordFrame(system.InputState{Left: true, Forward: i%3 == 0, Jump: i == 40})
	}
	require.NoError(t, rec.Save(tmpFile))

	result, err := runReplay(tmpFile, embeddedLoader(t), config.Default())
	require.NoError(t, err)

	want := simulate(replay.NewReplayer(rec.GetData()), cfg, course)
	assert.Equal(t, 200, result.Frames)
	assert.Equal(t, want.Final, result.Final)
	assert.Positive(t, result.Airborne)
}

func TestRunReplay_RecordedTuningWins(t *testing.T) {
	_, course := loadDemoCourse(t)
	fast := config.Default()
	fast.Movement.MoveSpeed = 0.1
	tmpFile := filepath.Join(t.TempDir(), "fast.json")

	rec := replay.NewRecorder(course.ID, fast)
	for i := 0; i < 10; i++ {
		rec.RecordFrame(system.InputState{Back: true})
	}
	require.NoError(t, rec.Save(tmpFile))

	result, err := runReplay(tmpFile, embeddedLoader(t), config.Default())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Final.Position.Z, 1e-9)
}

func TestRunReplay_Errors(t *testing.T) {
	loader := embeddedLoader(t)

	_, err := runReplay(filepath.Join(t.TempDir(), "missing.json"), loader, config.Default())
	assert.Error(t, err)

	rec := replay.NewRecorder("nowhere", nil)
	rec.RecordFrame(system.InputState{})
	tmpFile := filepath.Join(t.TempDir(), "nowhere.json")
	require.NoError(t, rec.Save(tmpFile))

	_, err = runReplay(tmpFile, loader, config.Default())
	assert.Error(t, err)
}

func TestReplayJumpBesideLowPlatformSinksIn(t *testing.T) {
	cfg, course := loadDemoCourse(t)
	// A jump from the spawn height comes back down after 25 frames. Drifting
	// right over the 1-high platform, the last step drops from above its top
	// to below it, so the downward probe never sees the top face
	data := scriptedReplay(30, "demo", func(i int) system.InputState {
		return system.InputState{Right: i < 25, Jump: i == 0}
	})

	result := simulate(replay.NewReplayer(data), cfg, course)

	assert.InDelta(t, 0.5, result.Final.Position.Y, 1e-9)
	assert.True(t, result.Final.Grounded)
	assert.Equal(t, 0, course.ObstacleAt(result.Final.Position))
	assert.Positive(t, result.Embedded)
}
