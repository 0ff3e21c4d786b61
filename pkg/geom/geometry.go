package geom

// Type identifies the primitive shape of a geometry
type Type int

const (
	Plane Type = iota
	Sphere
	Capsule
	Box
	// Mesh geometries are part of the scene model but ray intersection
	// against them is not supported.
	Mesh
)

// String returns the name of the primitive type
func (t Type) String() string {
	switch t {
	case Plane:
		return "plane"
	case Sphere:
		return "sphere"
	case Capsule:
		return "capsule"
	case Box:
		return "box"
	case Mesh:
		return "mesh"
	default:
		return "unknown"
	}
}

// NumGroups is the number of distinct geometry groups a scene can use.
// Group tags outside [0, NumGroups) are clamped into range when a group
// mask is applied.
const NumGroups = 6

// NoMaterial marks a geometry that carries its own alpha instead of
// referencing a scene material.
const NoMaterial = -1

// Geometry is an immutable per-step record describing one collision or
// visual shape attached to a body.
//
// Size semantics depend on Type:
//
//	Plane:   Size[0], Size[1] are half-extents of the rendered rectangle,
//	         0 meaning unbounded on that axis; Size[2] is unused.
//	Sphere:  Size[0] is the radius.
//	Capsule: Size[0] is the radius, Size[1] the half-length of the
//	         cylindrical section along local z.
//	Box:     Size[0..2] are the half-extents along the local axes.
type Geometry struct {
	Type     Type
	Size     [3]float64
	Body     int     // owning body id
	Group    int     // group tag for mask filtering
	Material int     // material id, or NoMaterial
	Alpha    float64 // geometry's own alpha, used when Material == NoMaterial
	Static   bool    // owning body is welded to the world
}

// Material holds the per-material data the visibility filter consults
type Material struct {
	Alpha float64
}
