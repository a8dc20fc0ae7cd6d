package entity

// Box is an axis-aligned box given by its center and half extents
type Box struct {
	Center Vec3
	Half   Vec3
}

// NewBox creates a box from its center and full size
func NewBox(center, size Vec3) Box {
	return Box{
		Center: center,
		Half:   Vec3{X: abs(size.X) / 2, Y: abs(size.Y) / 2, Z: abs(size.Z) / 2},
	}
}

// Min returns the lowest corner
func (b Box) Min() Vec3 {
	return b.Center.Sub(b.Half)
}

// Max returns the highest corner
func (b Box) Max() Vec3 {
	return b.Center.Add(b.Half)
}

// Top returns the height of the upper face
func (b Box) Top() float64 {
	return b.Center.Y + b.Half.Y
}

// Contains reports whether p lies inside or on the surface of the box
func (b Box) Contains(p Vec3) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// Obstacle is a static solid the agent collides with
type Obstacle struct {
	Name  string
	Box   Box
	Color uint32 // 0xRRGGBB, display only
}

// NewPlatform creates a platform standing on the ground plane.
// x and z locate its center; the box spans y in [groundY, groundY+height].
func NewPlatform(name string, x, z, groundY, height, width, depth float64, color uint32) Obstacle {
	return Obstacle{
		Name:  name,
		Box:   NewBox(Vec3{X: x, Y: groundY + height/2, Z: z}, Vec3{X: width, Y: height, Z: depth}),
		Color: color,
	}
}

// ObstacleSet is the ordered, read-only terrain the controller queries.
// It never changes after construction, so a frame always sees stable geometry.
type ObstacleSet struct {
	obstacles []Obstacle
	groundY   float64
}

// NewObstacleSet copies obstacles into a new set with the ground plane at groundY
func NewObstacleSet(groundY float64, obstacles ...Obstacle) *ObstacleSet {
	owned := make([]Obstacle, len(obstacles))
	copy(owned, obstacles)
	return &ObstacleSet{obstacles: owned, groundY: groundY}
}

// Len returns the number of obstacles (a nil set is empty)
func (s *ObstacleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.obstacles)
}

// At returns the i-th obstacle
func (s *ObstacleSet) At(i int) Obstacle {
	return s.obstacles[i]
}

// GroundY returns the height of the implicit ground plane
func (s *ObstacleSet) GroundY() float64 {
	if s == nil {
		return 0
	}
	return s.groundY
}

// Obstacles returns a copy of the obstacle list
func (s *ObstacleSet) Obstacles() []Obstacle {
	out := make([]Obstacle, s.Len())
	if s != nil {
		copy(out, s.obstacles)
	}
	return out
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
