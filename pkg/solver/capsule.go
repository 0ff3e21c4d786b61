package solver

import (
	stdmath "math"

	"github.com/rigidsim/raycast/pkg/math"
)

// Capsule returns the distance at which a local-frame ray intersects a
// capsule of radius size[0] whose cylindrical section spans z in
// [-size[1], size[1]], capped by hemispheres at both ends.
func Capsule(size [3]float64, pnt, vec math.Vec3) float64 {
	r := size[0]
	h := size[1]

	// cylindrical side: quadratic in the xy-plane projection,
	// (pnt.xy + x*vec.xy)^2 = r^2
	x0, x1 := solveQuad(vec.Dot2(vec), vec.Dot2(pnt), pnt.Dot2(pnt)-r*r)
	x := x0
	if IsMiss(x) {
		x = x1
	}

	// the round solution must fall between the flat ends
	if !IsMiss(x) && stdmath.Abs(pnt.Z+x*vec.Z) > h {
		x = Miss
	}

	// top cap: full sphere quadratic against the center (0,0,h),
	// accepting only hits on the upper hemisphere
	dif := pnt.Subtract(math.NewVec3(0, 0, h))
	x0, x1 = solveQuad(vec.Dot(vec), vec.Dot(dif), dif.Dot(dif)-r*r)
	if pnt.Z+x0*vec.Z >= h && x0 < x {
		x = x0
	}
	if pnt.Z+x1*vec.Z >= h && x1 < x {
		x = x1
	}

	// bottom cap, lower hemisphere
	dif = pnt.Add(math.NewVec3(0, 0, h))
	x0, x1 = solveQuad(vec.Dot(vec), vec.Dot(dif), dif.Dot(dif)-r*r)
	if pnt.Z+x0*vec.Z <= -h && x0 < x {
		x = x0
	}
	if pnt.Z+x1*vec.Z <= -h && x1 < x {
		x = x1
	}

	return x
}
