package geom

// Scene is the per-query view of a rigid-body scene: an ordered sequence
// of geometries (index = geometry id) with their current world transforms,
// plus the material table referenced by Geometry.Material.
//
// A Scene is borrowed for the duration of one query and never mutated by
// the ray casting code. The caller owns the backing slices.
type Scene struct {
	Geoms      []Geometry
	Transforms []Transform
	Materials  []Material
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// Add appends a geometry with its world transform and returns its id
func (s *Scene) Add(g Geometry, t Transform) int {
	s.Geoms = append(s.Geoms, g)
	s.Transforms = append(s.Transforms, t)
	return len(s.Geoms) - 1
}

// AddMaterial appends a material and returns its id
func (s *Scene) AddMaterial(m Material) int {
	s.Materials = append(s.Materials, m)
	return len(s.Materials) - 1
}

// MaterialAlpha returns the alpha that governs the geometry's
// transparency: the referenced material's alpha when one is set,
// otherwise the geometry's own.
func (s *Scene) MaterialAlpha(g Geometry) float64 {
	if g.Material == NoMaterial {
		return g.Alpha
	}
	if g.Material >= 0 && g.Material < len(s.Materials) {
		return s.Materials[g.Material].Alpha
	}
	return g.Alpha
}
