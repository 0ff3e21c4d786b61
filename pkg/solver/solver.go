// Package solver implements closed-form ray intersection solvers for the
// rigid-body primitive types. Every solver takes a ray already expressed
// in the primitive's local frame and returns the closest valid forward
// distance, or Miss. Solvers are pure functions: numeric degeneracy is
// absorbed by the Miss sentinel, never raised as an error.
package solver

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
)

// ErrTypeUnsupportedGeometry tags errors returned when ray dispatch
// reaches a geometry type it cannot intersect.
const ErrTypeUnsupportedGeometry = "err_unsupported_geometry"

// Func computes the intersection distance of a local-frame ray with a
// primitive of the given size parameters, returning Miss on no hit.
type Func func(size [3]float64, pnt, vec math.Vec3) float64

var funcs = map[geom.Type]Func{
	geom.Plane:   Plane,
	geom.Sphere:  Sphere,
	geom.Capsule: Capsule,
	geom.Box:     Box,
	// geom.Mesh intentionally absent: ray <> mesh is not supported
}

// ForType returns the intersection solver for a primitive type. Mesh and
// unknown types have no solver and yield an unsupported-geometry error.
func ForType(t geom.Type) (Func, error) {
	fn, ok := funcs[t]
	if !ok {
		return nil, errors.New("ray intersection is not supported for this geometry type").
			WithType(ErrTypeUnsupportedGeometry).
			WithTag("geom_type", t.String())
	}
	return fn, nil
}

// Supported reports whether a primitive type has an intersection solver
func Supported(t geom.Type) bool {
	_, ok := funcs[t]
	return ok
}
