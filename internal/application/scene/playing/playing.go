// Package playing provides the main gameplay scene.
package playing

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/raywalk/internal/application/replay"
	"github.com/younwookim/raywalk/internal/application/scene"
	"github.com/younwookim/raywalk/internal/application/state"
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/domain/entity"
	"github.com/younwookim/raywalk/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorGround  = color.RGBA{60, 64, 72, 255}
	colorOutline = color.RGBA{20, 20, 30, 255}
	colorShadow  = color.RGBA{0, 0, 0, 90}
	colorAgent   = color.RGBA{0, 160, 255, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
)

// Playing is the main gameplay scene
type Playing struct {
	config     *config.PhysicsConfig
	course     *entity.Course
	state      state.GameState
	controller *system.RaycastController
	input      *system.InputSystem
	loader     system.ModelLoader
	camera     *Camera
	screenW    int
	screenH    int

	cancel context.CancelFunc

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene.
// If recordPath is not empty, gameplay will be recorded.
func New(cfg *config.PhysicsConfig, course *entity.Course, recordPath string) *Playing {
	ppu := cfg.Display.PixelsPerUnit
	p := &Playing{
		config:         cfg,
		course:         course,
		state:          state.StateLoading,
		controller:     system.NewRaycastController(cfg, course.Spawn),
		input:          system.NewInputSystem(nil),
		camera:         NewCamera(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, ppu),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}
	p.loader = AvatarLoader(course.Spawn, int(2*cfg.Agent.Radius*ppu), colorAgent)
	p.camera.Follow(course.Spawn)

	// Initialize recorder if recording is enabled
	if recordPath != "" {
		p.recorder = replay.NewRecorder(course.ID, cfg)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return p
}

// SetModelLoader replaces the avatar loader used by OnEnter
func (p *Playing) SetModelLoader(loader system.ModelLoader) {
	p.loader = loader
}

// Update proceeds the scene by one tick (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	// Drain key events every tick so a release during pause is not lost
	input := p.input.GetInput()

	switch p.state {
	case state.StateLoading:
		p.step(system.InputState{})
		if p.controller.Lifecycle() == state.Ready {
			p.state = state.StatePlaying
		}
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePaused
			return nil, nil
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
		p.step(input)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	}

	return nil, nil // nil = stay on this scene
}

// step resolves one frame and records the input if the controller moved
func (p *Playing) step(input system.InputState) {
	before := p.controller.LastFrame().Frame
	agent := p.controller.ResolveFrame(input, p.course.Obstacles)
	if p.controller.LastFrame().Frame == before {
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.camera.Follow(agent.Position)
}

// Retune applies new tuning before the next tick (implements scene.Retunable)
func (p *Playing) Retune(cfg *config.PhysicsConfig) {
	p.config = cfg
	p.controller.Retune(cfg)
	p.camera.PixelsPerUnit = cfg.Display.PixelsPerUnit
}

// Controller exposes the movement controller
func (p *Playing) Controller() system.MovementController {
	return p.controller
}

// State returns the scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	p.drawGround(screen)
	p.drawObstacles(screen)
	p.drawAgent(screen)
	p.drawUI(screen)

	switch p.state {
	case state.StateLoading:
		p.drawOverlay(screen, "LOADING")
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	}
}

func (p *Playing) drawGround(screen *ebiten.Image) {
	w, d := p.course.GroundWidth, p.course.GroundDepth
	if w <= 0 || d <= 0 {
		return
	}
	x, y := p.camera.ToScreen(-w/2, -d/2)
	ppu := p.camera.PixelsPerUnit
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*ppu), float32(d*ppu), colorGround, false)
}

// drawObstacles draws boxes from lowest to highest top so taller ones overlap
func (p *Playing) drawObstacles(screen *ebiten.Image) {
	obstacles := p.course.Obstacles.Obstacles()
	sort.SliceStable(obstacles, func(i, j int) bool {
		return obstacles[i].Box.Top() < obstacles[j].Box.Top()
	})

	ppu := p.camera.PixelsPerUnit
	highest := p.course.Highest()
	for _, o := range obstacles {
		if !p.camera.Visible(o.Box) {
			continue
		}
		lo := o.Box.Min()
		x, y := p.camera.ToScreen(lo.X, lo.Z)
		w := float32(2 * o.Box.Half.X * ppu)
		h := float32(2 * o.Box.Half.Z * ppu)
		vector.DrawFilledRect(screen, float32(x), float32(y), w, h, shaded(o.Color, o.Box.Top(), highest), false)
		vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, colorOutline, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", o.Box.Top()), int(x)+2, int(y)+1)
	}
}

func (p *Playing) drawAgent(screen *ebiten.Image) {
	agent := p.controller.Agent()
	ppu := p.camera.PixelsPerUnit
	x, y := p.camera.ToScreen(agent.Position.X, agent.Position.Z)
	r := agent.Radius * ppu

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), colorShadow, true)

	var img *ebiten.Image
	if a, ok := p.controller.Model().(*Avatar); ok {
		img = a.Image()
	}
	if img == nil {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, colorAgent, true)
		return
	}

	// Grow with height so jumps read from above
	scale := 1 + 0.08*(agent.Position.Y-agent.HalfHeight())
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	agent := p.controller.Agent()
	last := p.controller.LastFrame()

	text := fmt.Sprintf("%s | WASD/Arrows: Move | Space: Jump | ESC: Pause\n", p.course.Name)
	text += fmt.Sprintf("pos %.2f %.2f %.2f  vy %.2f  %s\n",
		agent.Position.X, agent.Position.Y, agent.Position.Z, agent.VerticalVelocity, agent.State())
	text += fmt.Sprintf("frame %d  blocked %s  TPS %.0f", last.Frame, last.Blocked, ebiten.ActualTPS())
	if p.recorder != nil {
		text += fmt.Sprintf("  REC %d", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrint(screen, text)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter starts loading the avatar
func (p *Playing) OnEnter() {
	if p.controller.Lifecycle() == state.Ready || p.controller.Loading() {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.controller.LoadModelAsync(ctx, p.loader)
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.cancel != nil {
		p.cancel()
	}
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

// shaded darkens lower platforms so height reads from above
func shaded(c uint32, top, highest float64) color.RGBA {
	f := 1.0
	if highest > 0 {
		f = 0.6 + 0.4*top/highest
	}
	return color.RGBA{
		R: scaleChannel(uint8(c>>16), f),
		G: scaleChannel(uint8(c>>8), f),
		B: scaleChannel(uint8(c), f),
		A: 255,
	}
}
