package solver

import (
	"math"
	"testing"

	raymath "github.com/rigidsim/raycast/pkg/math"
)

func TestBox_FaceHits(t *testing.T) {
	size := [3]float64{1, 1, 1}

	tests := []struct {
		name     string
		pnt, vec raymath.Vec3
		expected float64
	}{
		{"head-on from +z", raymath.NewVec3(0, 0, 5), raymath.NewVec3(0, 0, -1), 4},
		{"head-on from -x", raymath.NewVec3(-3, 0, 0), raymath.NewVec3(1, 0, 0), 2},
		{"off-center still within face", raymath.NewVec3(0.9, -0.5, 5), raymath.NewVec3(0, 0, -1), 4},
		{"unnormalized direction is parametric", raymath.NewVec3(0, 0, 5), raymath.NewVec3(0, 0, -4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Box(size, tt.pnt, tt.vec)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestBox_AsymmetricExtents(t *testing.T) {
	size := [3]float64{1, 2, 3}

	// enters through the y=+2 face
	got := Box(size, raymath.NewVec3(0, 6, 0), raymath.NewVec3(0, -1, 0))
	if math.Abs(got-4) > 1e-12 {
		t.Errorf("expected 4, got %f", got)
	}

	// the same ray offset to x=1.5 passes beside the box
	got = Box(size, raymath.NewVec3(1.5, 6, 0), raymath.NewVec3(0, -1, 0))
	if !IsMiss(got) {
		t.Errorf("expected Miss beside the box, got %f", got)
	}
}

func TestBox_EdgeInclusive(t *testing.T) {
	// hit point exactly on the face boundary counts as inside
	got := Box([3]float64{1, 1, 1}, raymath.NewVec3(1, 0, 5), raymath.NewVec3(0, 0, -1))
	if math.Abs(got-4) > 1e-12 {
		t.Errorf("expected 4 on the edge, got %f", got)
	}
}

func TestBox_OriginInside(t *testing.T) {
	// backward face solutions are rejected, the exit face wins
	got := Box([3]float64{1, 1, 1}, raymath.NewVec3(0, 0, 0), raymath.NewVec3(0, 0, -1))
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("expected exit distance 1, got %f", got)
	}
}

func TestBox_Miss(t *testing.T) {
	size := [3]float64{1, 1, 1}

	tests := []struct {
		name     string
		pnt, vec raymath.Vec3
	}{
		{"pointing away", raymath.NewVec3(0, 0, 5), raymath.NewVec3(0, 0, 1)},
		{"parallel above the box", raymath.NewVec3(-5, 0, 2), raymath.NewVec3(1, 0, 0)},
		{"diagonal past a corner", raymath.NewVec3(3, 3, 0), raymath.NewVec3(0, -1, 0)},
		{"zero direction", raymath.NewVec3(0, 0, 5), raymath.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Box(size, tt.pnt, tt.vec); !IsMiss(got) {
				t.Errorf("expected Miss, got %f", got)
			}
		})
	}
}
