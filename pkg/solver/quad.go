package solver

import "math"

// minVal is the smallest magnitude treated as nonzero by the solvers.
// Discriminants and direction components below it are degenerate.
const minVal = 1e-15

// Miss is the sentinel distance meaning "no intersection". It is larger
// than every valid distance, so minimum reduction over mixed candidates
// never picks an invalid one unless all are invalid.
var Miss = math.Inf(1)

// IsMiss reports whether a distance is the no-intersection sentinel
func IsMiss(x float64) bool {
	return math.IsInf(x, 1)
}

// solveQuad returns the two roots of a*x^2 + 2*b*x + c = 0 with x0 <= x1
// in the well-posed case. A root is Miss when the discriminant is
// degenerate or the root is negative (the ray points away from the
// surface). The discriminant test runs before any division, so a == 0
// never traps; it simply yields Miss.
func solveQuad(a, b, c float64) (x0, x1 float64) {
	det := b*b - a*c
	if det < minVal {
		return Miss, Miss
	}
	det = math.Sqrt(det)

	x0 = (-b - det) / a
	x1 = (-b + det) / a
	if x0 < 0 || math.IsNaN(x0) {
		x0 = Miss
	}
	if x1 < 0 || math.IsNaN(x1) {
		x1 = Miss
	}
	return x0, x1
}
