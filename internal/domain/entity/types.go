package entity

// Course is a loaded playing field: static terrain plus where the agent starts
type Course struct {
	ID        string
	Name      string
	Spawn     Vec3
	Obstacles *ObstacleSet

	// Extent of the visible ground plane (X by Z), display only
	GroundWidth float64
	GroundDepth float64
}

// ObstacleAt returns the index of the first obstacle containing p, or -1
func (c *Course) ObstacleAt(p Vec3) int {
	for i := 0; i < c.Obstacles.Len(); i++ {
		if c.Obstacles.At(i).Box.Contains(p) {
			return i
		}
	}
	return -1
}

// Highest returns the tallest platform top, or the ground height for an empty course
func (c *Course) Highest() float64 {
	top := c.Obstacles.GroundY()
	for i := 0; i < c.Obstacles.Len(); i++ {
		if t := c.Obstacles.At(i).Box.Top(); t > top {
			top = t
		}
	}
	return top
}
