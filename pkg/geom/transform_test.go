package geom

import (
	stdmath "math"
	"testing"

	"github.com/rigidsim/raycast/pkg/math"
)

func TestTransform_ToLocal_TranslationOnly(t *testing.T) {
	tr := NewTransform(math.Identity(), math.NewVec3(1, 2, 3))
	ray := math.NewRay(math.NewVec3(1, 2, 8), math.NewVec3(0, 0, -1))

	local := tr.ToLocal(ray)

	if local.Origin != math.NewVec3(0, 0, 5) {
		t.Errorf("expected local origin (0,0,5), got %v", local.Origin)
	}
	if local.Direction != math.NewVec3(0, 0, -1) {
		t.Errorf("expected local direction (0,0,-1), got %v", local.Direction)
	}
}

func TestTransform_ToLocal_Rotation(t *testing.T) {
	// geometry rotated a quarter turn about z: world x is local -y
	rot := math.FromAxisAngle(math.NewVec3(0, 0, 1), stdmath.Pi/2)
	tr := NewTransform(rot, math.NewVec3(0, 0, 0))

	local := tr.ToLocal(math.NewRay(math.NewVec3(2, 0, 0), math.NewVec3(-1, 0, 0)))

	tol := 1e-12
	if stdmath.Abs(local.Origin.X) > tol || stdmath.Abs(local.Origin.Y+2) > tol {
		t.Errorf("expected local origin (0,-2,0), got %v", local.Origin)
	}
	if stdmath.Abs(local.Direction.X) > tol || stdmath.Abs(local.Direction.Y-1) > tol {
		t.Errorf("expected local direction (0,1,0), got %v", local.Direction)
	}
}

func TestTransform_ToLocal_PreservesDirectionScale(t *testing.T) {
	rot := math.FromAxisAngle(math.NewVec3(1, 1, 0), 0.9)
	tr := NewTransform(rot, math.NewVec3(5, -1, 2))

	dir := math.NewVec3(0, 0, -2.5) // not normalized on purpose
	local := tr.ToLocal(math.NewRay(math.NewVec3(0, 0, 0), dir))

	if stdmath.Abs(local.Direction.Length()-dir.Length()) > 1e-12 {
		t.Errorf("rotation must preserve direction magnitude: %f vs %f",
			local.Direction.Length(), dir.Length())
	}
}
