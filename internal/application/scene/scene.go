// Package scene defines the Scene interface for game screens.
//
// Each screen implements Scene to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// dt is the tick length in seconds (typically 1/60); movement itself is
	// per tick and does not scale with it.
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Retunable is implemented by scenes that accept new tuning between ticks
type Retunable interface {
	Retune(cfg *config.PhysicsConfig)
}
