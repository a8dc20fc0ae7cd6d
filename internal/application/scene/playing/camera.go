package playing

import "github.com/younwookim/raywalk/internal/domain/entity"

// Camera is a top-down view centered on a point of the ground plane.
// It only reads resolved positions and never feeds back into movement.
type Camera struct {
	X, Z          float64
	PixelsPerUnit float64
	screenW       int
	screenH       int
}

// NewCamera creates a camera for a screen of the given size
func NewCamera(screenW, screenH int, pixelsPerUnit float64) *Camera {
	return &Camera{PixelsPerUnit: pixelsPerUnit, screenW: screenW, screenH: screenH}
}

// Follow recenters the view on p
func (c *Camera) Follow(p entity.Vec3) {
	c.X = p.X
	c.Z = p.Z
}

// ToScreen converts world X/Z into screen pixels
func (c *Camera) ToScreen(x, z float64) (float64, float64) {
	sx := (x-c.X)*c.PixelsPerUnit + float64(c.screenW)/2
	sy := (z-c.Z)*c.PixelsPerUnit + float64(c.screenH)/2
	return sx, sy
}

// Visible reports whether the box overlaps the screen when seen from above
func (c *Camera) Visible(b entity.Box) bool {
	lo, hi := b.Min(), b.Max()
	x0, y0 := c.ToScreen(lo.X, lo.Z)
	x1, y1 := c.ToScreen(hi.X, hi.Z)
	return x1 >= 0 && y1 >= 0 && x0 <= float64(c.screenW) && y0 <= float64(c.screenH)
}
