package entity

import "math"

// RayHit is the nearest surface crossing found by a ray probe
type RayHit struct {
	Distance float64
	Point    Vec3
	Normal   Vec3
	Index    int // position of the obstacle in its ObstacleSet
}

// faceEpsilon decides which face a hit point lies on
const faceEpsilon = 1e-6

// IntersectRay casts a ray against the box using the slab method.
// dir must be unit length. Only faces turned towards the ray count, so a ray
// starting inside the box, or past it, finds nothing.
// Hits beyond maxDistance are rejected; a hit at exactly maxDistance counts.
func (b Box) IntersectRay(origin, dir Vec3, maxDistance float64) (RayHit, bool) {
	lo, hi := b.Min(), b.Max()

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	slabs := [3]struct{ o, d, lo, hi float64 }{
		{origin.X, dir.X, lo.X, hi.X},
		{origin.Y, dir.Y, lo.Y, hi.Y},
		{origin.Z, dir.Z, lo.Z, hi.Z},
	}
	for _, s := range slabs {
		if s.d == 0 {
			// Parallel to the slab: must already be between its planes
			if s.o < s.lo || s.o > s.hi {
				return RayHit{}, false
			}
			continue
		}
		t1 := (s.lo - s.o) / s.d
		t2 := (s.hi - s.o) / s.d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RayHit{}, false
		}
	}

	t := tmin
	if t < 0 || t > maxDistance {
		return RayHit{}, false
	}

	point := origin.Add(dir.Scale(t))
	return RayHit{Distance: t, Point: point, Normal: b.faceNormal(point)}, true
}

// faceNormal returns the outward normal of the face p lies on
func (b Box) faceNormal(p Vec3) Vec3 {
	lo, hi := b.Min(), b.Max()
	switch {
	case math.Abs(p.Y-hi.Y) < faceEpsilon:
		return Vec3{Y: 1}
	case math.Abs(p.Y-lo.Y) < faceEpsilon:
		return Vec3{Y: -1}
	case math.Abs(p.X-lo.X) < faceEpsilon:
		return Vec3{X: -1}
	case math.Abs(p.X-hi.X) < faceEpsilon:
		return Vec3{X: 1}
	case math.Abs(p.Z-lo.Z) < faceEpsilon:
		return Vec3{Z: -1}
	default:
		return Vec3{Z: 1}
	}
}
