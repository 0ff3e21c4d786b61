package raycast

import "github.com/rigidsim/raycast/pkg/geom"

// eligible reports whether a geometry participates in a query. All rules
// must hold: the owning body is not excluded, the governing alpha is not
// fully transparent, static gating passes, and the group mask (when
// present) enables the geometry's group.
func eligible(s *geom.Scene, g geom.Geometry, opts Options) bool {
	if opts.ExcludeBody >= 0 && g.Body == opts.ExcludeBody {
		return false
	}
	if s.MaterialAlpha(g) == 0 {
		return false
	}
	if !opts.AllowStatic && g.Static {
		return false
	}
	if len(opts.GroupMask) > 0 && !opts.GroupMask[clampGroup(g.Group, len(opts.GroupMask))] {
		return false
	}
	return true
}

// clampGroup clamps a group tag into the valid group range, further
// bounded by the mask length so short masks stay indexable.
func clampGroup(group, maskLen int) int {
	upper := geom.NumGroups - 1
	if maskLen-1 < upper {
		upper = maskLen - 1
	}
	if group < 0 {
		return 0
	}
	if group > upper {
		return upper
	}
	return group
}
