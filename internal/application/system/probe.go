package system

import "github.com/younwookim/raywalk/internal/domain/entity"

// RayProbe casts a ray against every obstacle and returns the closest hit
// within maxDistance. The direction is normalized first; a zero direction or an
// empty set never hits. Equal distances keep the earlier obstacle.
func RayProbe(obstacles *entity.ObstacleSet, origin, direction entity.Vec3, maxDistance float64) (entity.RayHit, bool) {
	if direction.IsZero() || maxDistance < 0 {
		return entity.RayHit{}, false
	}
	direction = direction.Normalize()

	var closest entity.RayHit
	found := false

	for i := 0; i < obstacles.Len(); i++ {
		hit, ok := obstacles.At(i).Box.IntersectRay(origin, direction, maxDistance)
		if !ok {
			continue
		}
		if !found || hit.Distance < closest.Distance {
			closest = hit
			closest.Index = i
			found = true
		}
	}

	return closest, found
}
