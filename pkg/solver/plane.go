package solver

import (
	stdmath "math"

	"github.com/rigidsim/raycast/pkg/math"
)

// Plane returns the distance at which a local-frame ray intersects a
// plane through the origin with normal +z. size[0] and size[1] bound the
// rendered rectangle in local x and y; a half-extent of 0 leaves that
// axis unbounded. Only the front face (approached from +z) is hit.
func Plane(size [3]float64, pnt, vec math.Vec3) float64 {
	// ray must point towards the front face
	if vec.Z > -minVal {
		return Miss
	}

	x := -pnt.Z / vec.Z
	if x < 0 {
		return Miss
	}

	px := pnt.X + x*vec.X
	py := pnt.Y + x*vec.Y
	if size[0] > 0 && stdmath.Abs(px) > size[0] {
		return Miss
	}
	if size[1] > 0 && stdmath.Abs(py) > size[1] {
		return Miss
	}

	return x
}
