package arrange

import (
	"github.com/radevgit/offroad/broadphase"
	"github.com/radevgit/offroad/geo"
)

// splitEps bounds how close an intersection point may sit to an edge's
// existing endpoint before it is treated as "already there" rather than as a
// new split point. It is distinct from the endpoint-merging tolerances in
// doc.go: this one operates in an edge's normalized [0,1] parameter space.
const splitEps = 1e-9

// splitAll repeatedly splits every pair of candidate-intersecting edges at
// their intersection points until no edge changes in a pass, then returns the
// final flat edge list. Each pass rebuilds the broad-phase index from the
// current edge list, since splitting changes both ids and bounding boxes.
//
// The loop is capped at maxSplitPasses(len) passes. In practice a geometric
// arrangement converges in a small constant number of passes; a run that
// reaches the cap is returned as-is rather than treated as an error, on the
// theory that a pipeline consumer is better served by a best-effort result
// than by a fatal condition deep in pure geometry code.
func splitAll(edges []geo.Edge, index broadphase.Index) []geo.Edge {
	current := edges
	maxPasses := maxSplitPasses(len(edges))
	for pass := 0; pass < maxPasses; pass++ {
		next, changed := splitPass(current, index)
		current = next
		if !changed {
			break
		}
	}
	return current
}

func maxSplitPasses(n int) int {
	if n*10 > 64 {
		return n * 10
	}
	return 64
}

func splitPass(edges []geo.Edge, index broadphase.Index) ([]geo.Edge, bool) {
	index.Clear()
	for i, e := range edges {
		index.Add(int64(i), e.AABB())
	}

	hits := make([][]geo.Point, len(edges))
	changed := false

	for i, e := range edges {
		box := e.AABB()
		for _, j := range index.Query(box) {
			if int(j) <= i {
				continue
			}
			o := edges[j]
			pts := geo.Intersect(e, o)
			if len(pts) == 0 {
				continue
			}
			hits[i] = append(hits[i], pts...)
			hits[int(j)] = append(hits[int(j)], pts...)
		}
	}

	out := make([]geo.Edge, 0, len(edges))
	for i, e := range edges {
		if len(hits[i]) == 0 {
			out = append(out, e)
			continue
		}
		pieces := geo.SplitAt(e, hits[i], splitEps)
		if len(pieces) > 1 {
			changed = true
		}
		out = append(out, pieces...)
	}
	return out, changed
}
