// Package raycast computes the nearest intersection of a world-space ray
// with the primitives of a rigid-body scene. A query filters the scene's
// geometries for visibility, maps the ray into each eligible geometry's
// local frame, dispatches to the per-type solvers and reduces every
// candidate to a single (distance, id) answer. Queries are pure: the
// scene is borrowed and never mutated, and identical inputs always yield
// identical results.
package raycast

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/rigidsim/raycast/pkg/geom"
	"github.com/rigidsim/raycast/pkg/math"
	"github.com/rigidsim/raycast/pkg/solver"
)

// Hit is the result of one query. Distance and GeomID are set together:
// either both sentinels (no intersection) or a distance >= 0 with the id
// of the intersected geometry.
type Hit struct {
	Distance float64
	GeomID   int
}

// NoHit is returned when the ray intersects no eligible geometry
var NoHit = Hit{Distance: -1, GeomID: -1}

// castOrder fixes the order in which primitive types are dispatched
var castOrder = []geom.Type{geom.Plane, geom.Sphere, geom.Capsule, geom.Box}

// Cast returns the nearest intersection of the ray with the scene's
// eligible geometries, or NoHit when nothing is intersected.
//
// A mesh geometry that survives the visibility filter is a fatal
// condition for the query: mesh intersection is not supported, and
// silently skipping it would misreport visibility. Callers that want to
// ignore meshes must filter them out of the scene themselves.
//
// Exactly equal minimum distances are broken towards the lowest
// geometry id, independent of dispatch order.
func Cast(s *geom.Scene, ray math.Ray, opts Options) (Hit, error) {
	byType := make(map[geom.Type][]int, len(castOrder))
	for id, g := range s.Geoms {
		if !eligible(s, g, opts) {
			continue
		}
		if !solver.Supported(g.Type) {
			_, err := solver.ForType(g.Type)
			return NoHit, errors.New("scene contains a geometry the ray caster cannot test").
				WithTag("geom_id", id).
				Wrap(err)
		}
		byType[g.Type] = append(byType[g.Type], id)
	}

	best := solver.Miss
	bestID := -1

	for _, t := range castOrder {
		ids := byType[t]
		if len(ids) == 0 {
			continue
		}
		fn, err := solver.ForType(t)
		if err != nil {
			return NoHit, err
		}

		// each geometry's evaluation is independent of the others
		for _, id := range ids {
			local := s.Transforms[id].ToLocal(ray)
			x := fn(s.Geoms[id].Size, local.Origin, local.Direction)
			if x < best || (x == best && !solver.IsMiss(x) && id < bestID) {
				best = x
				bestID = id
			}
		}
	}

	if solver.IsMiss(best) {
		return NoHit, nil
	}
	return Hit{Distance: best, GeomID: bestID}, nil
}
