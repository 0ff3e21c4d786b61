package geom

import "github.com/rigidsim/raycast/pkg/math"

// Transform is a geometry's world pose for the current frame: a rotation
// whose columns are the local axes expressed in world coordinates, plus a
// translation.
type Transform struct {
	Rot math.Mat3
	Pos math.Vec3
}

// NewTransform creates a transform from a rotation and a translation
func NewTransform(rot math.Mat3, pos math.Vec3) Transform {
	return Transform{Rot: rot, Pos: pos}
}

// ToLocal maps a world-space ray into the geometry's local frame:
// origin' = Rᵀ(origin - pos), direction' = Rᵀ direction. Solvers assume
// primitive-centered, axis-aligned coordinates.
func (t Transform) ToLocal(r math.Ray) math.Ray {
	return math.Ray{
		Origin:    t.Rot.TMulVec(r.Origin.Subtract(t.Pos)),
		Direction: t.Rot.TMulVec(r.Direction),
	}
}
