package render

import (
	"cmp"
	"slices"
)

// SortByDepth orders triangles back to front (largest mean depth first) for
// painter's-algorithm drawing. Ties keep no particular order, and
// intersecting triangles can come out wrong since there is no split or
// per-pixel test.
func SortByDepth(tris []ScreenTriangle) {
	slices.SortFunc(tris, func(a, b ScreenTriangle) int {
		return cmp.Compare(b.Depth(), a.Depth())
	})
}
