package playing

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/raywalk/internal/application/system"
	"github.com/younwookim/raywalk/internal/domain/entity"
)

// Avatar is the drawable agent model.
// The sprite is prepared off the frame goroutine; the ebiten image is created
// on first draw.
type Avatar struct {
	pos    entity.Vec3
	sprite image.Image
	img    *ebiten.Image
}

// NewAvatar creates an avatar at pos using sprite
func NewAvatar(pos entity.Vec3, sprite image.Image) *Avatar {
	return &Avatar{pos: pos, sprite: sprite}
}

// Position implements system.Model
func (a *Avatar) Position() entity.Vec3 {
	return a.pos
}

// SetPosition implements system.Model
func (a *Avatar) SetPosition(p entity.Vec3) {
	a.pos = p
}

// Image returns the ebiten image of the sprite, creating it if needed
func (a *Avatar) Image() *ebiten.Image {
	if a.img == nil && a.sprite != nil {
		a.img = ebiten.NewImageFromImage(a.sprite)
	}
	return a.img
}

// AvatarLoader returns a loader that builds an avatar sprite of the given
// diameter in pixels and places it at spawn
func AvatarLoader(spawn entity.Vec3, diameter int, tint color.RGBA) system.ModelLoader {
	return func(ctx context.Context) (system.Model, error) {
		if diameter <= 0 {
			return nil, fmt.Errorf("invalid avatar size %d", diameter)
		}
		sprite := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
		r := float64(diameter) / 2
		for y := 0; y < diameter; y++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("avatar load canceled: %w", err)
			}
			for x := 0; x < diameter; x++ {
				dx := float64(x) + 0.5 - r
				dy := float64(y) + 0.5 - r
				d2 := dx*dx + dy*dy
				switch {
				case d2 > r*r:
					continue
				case d2 > (r-1.5)*(r-1.5):
					sprite.SetRGBA(x, y, color.RGBA{20, 20, 30, 255})
				default:
					// Lighter toward the upper-left
					shade := 1 - 0.35*(dx+dy)/(2*r)
					sprite.SetRGBA(x, y, color.RGBA{
						R: scaleChannel(tint.R, shade),
						G: scaleChannel(tint.G, shade),
						B: scaleChannel(tint.B, shade),
						A: 255,
					})
				}
			}
		}
		return NewAvatar(spawn, sprite), nil
	}
}

func scaleChannel(c uint8, f float64) uint8 {
	v := float64(c) * f
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
