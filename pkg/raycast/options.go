package raycast

// Options control which geometries a query may intersect
type Options struct {
	// GroupMask enables geometry groups by tag. A geometry's group is
	// clamped into the valid group range before lookup. A nil or empty
	// mask disables group filtering entirely.
	GroupMask []bool

	// AllowStatic permits hits on geometries whose owning body is welded
	// to the world. Dynamic bodies always pass.
	AllowStatic bool

	// ExcludeBody removes every geometry owned by the given body id from
	// consideration. -1 excludes nothing.
	ExcludeBody int
}

// DefaultOptions returns the options used when the caller has no
// filtering requirements: statics allowed, no body excluded, no mask.
func DefaultOptions() Options {
	return Options{AllowStatic: true, ExcludeBody: -1}
}
