// Package broadphase implements the conservative spatial filters the
// reconciliation pipeline uses to cut down the number of precise geometric
// tests it needs to run. It is modeled on the cell/edge association used by
// the teacher library's EdgeIndex (golang/geo's S2 edge index), replacing
// spherical cell coverings with a flat 2D grid.
//
// Neither backend performs precise geometry: callers always follow a query
// with an exact intersection test. Queries may return false positives but
// never false negatives.
package broadphase

import "github.com/radevgit/offroad/geo"

// Stats reports lightweight diagnostics about an index. It is not part of
// any correctness contract; callers may ignore it.
type Stats struct {
	NumEntries int
	NumQueries int
	NumCells   int
}

// Index maps integer edge ids to bounding boxes and answers overlap queries.
type Index interface {
	// Add inserts id with its bounding box. Ids need not be contiguous but
	// must be unique within one index.
	Add(id int64, box geo.AABB)
	// Query returns every id whose stored box may overlap box. The result
	// may contain false positives; it never omits a true overlap. It does
	// not exclude any id the caller itself supplies in box's construction.
	Query(box geo.AABB) []int64
	// Clear empties the index for reuse.
	Clear()
	// Stats reports diagnostic counters.
	Stats() Stats
}
