package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/raywalk/internal/application/game"
	"github.com/younwookim/raywalk/internal/application/scene/playing"
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Config directory (default: embedded configs)")
	courseName := flag.String("course", "demo", "Course to load from courses/<name>.yaml")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay a recording headlessly and print the final agent state")
	watchFlag := flag.Bool("watch", false, "Reload physics.json from -config while running")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll(*courseName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded course %q from %s", cfg.Course.ID, loader.BasePath())

	if *replayFlag != "" {
		if _, err := runReplay(*replayFlag, loader, cfg.Physics); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		return
	}

	course, err := system.LoadCourse(cfg.Course)
	if err != nil {
		log.Fatalf("Failed to load course: %v", err)
	}

	playScene := playing.New(cfg.Physics, course, *recordFlag)
	g := game.New(playScene, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Physics.Display.Framerate))

	if *watchFlag {
		if *configDir == "" {
			log.Fatalf("-watch needs -config: embedded configs cannot change")
		}
		w, err := config.NewWatcher(*configDir)
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = w.Close() }()
		g.WatchTuning(w.Reloads, w.Errors)
		log.Printf("Watching %s for tuning changes", *configDir)
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Physics.Display.ScreenWidth*cfg.Physics.Display.Scale,
		cfg.Physics.Display.ScreenHeight*cfg.Physics.Display.Scale)
	ebiten.SetWindowTitle("Raywalk")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	playScene.OnExit()
	if err != nil {
		log.Fatal(err)
	}
}

// embeddedConfigs names the built-in config set in logs
const embeddedConfigs = "embedded configs"

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, embeddedConfigs), nil
}
