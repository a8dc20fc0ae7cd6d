// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/raywalk/internal/application/scene"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   uint64

	reloads <-chan *config.PhysicsConfig
	errs    <-chan error
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// WatchTuning makes the game apply tuning received on reloads before the
// next tick. Errors received on errs are logged. Either channel may be nil.
func (g *Game) WatchTuning(reloads <-chan *config.PhysicsConfig, errs <-chan error) {
	g.reloads = reloads
	g.errs = errs
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.applyTuning()

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// applyTuning drains pending reloads without blocking the tick
func (g *Game) applyTuning() {
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				continue
			}
			if r, ok := g.current.(scene.Retunable); ok {
				r.Retune(cfg)
				log.Printf("Tuning reloaded")
			}
		case err, ok := <-g.errs:
			if !ok {
				g.errs = nil
				continue
			}
			log.Printf("Tuning reload failed: %v", err)
		default:
			return
		}
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Ticks returns the number of completed scene updates
func (g *Game) Ticks() uint64 {
	return g.ticks
}
