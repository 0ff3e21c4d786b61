package solver

import (
	stdmath "math"

	"github.com/rigidsim/raycast/pkg/math"
)

// Box returns the distance at which a local-frame ray intersects a box
// with half-extents size[0..2], faces at +/-size[i] on each axis. Each of
// the six face-planes is solved independently; a candidate is valid when
// the hit point lies within the half-extents on the other two axes. The
// smallest valid forward distance wins.
func Box(size [3]float64, pnt, vec math.Vec3) float64 {
	p := pnt.Array()
	v := vec.Array()

	best := Miss
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3

		for _, side := range [2]float64{1, -1} {
			// pnt[i] + x*vec[i] = side*size[i]
			x := (side*size[i] - p[i]) / v[i]
			if x < 0 || x >= best || stdmath.IsNaN(x) {
				continue
			}
			if stdmath.Abs(p[j]+x*v[j]) > size[j] {
				continue
			}
			if stdmath.Abs(p[k]+x*v[k]) > size[k] {
				continue
			}
			best = x
		}
	}

	return best
}
