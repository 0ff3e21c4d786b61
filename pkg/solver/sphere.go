package solver

import "github.com/rigidsim/raycast/pkg/math"

// Sphere returns the distance at which a local-frame ray intersects a
// sphere of radius size[0] centered at the origin. A ray starting inside
// the sphere hits the exit point: the near root is negative and invalid,
// so the far root is chosen.
func Sphere(size [3]float64, pnt, vec math.Vec3) float64 {
	r := size[0]
	x0, x1 := solveQuad(vec.Dot(vec), vec.Dot(pnt), pnt.Dot(pnt)-r*r)
	if IsMiss(x0) {
		return x1
	}
	return x0
}
