package arrange

import (
	"github.com/radevgit/offroad/broadphase"
	"github.com/radevgit/offroad/geo"
	"github.com/radevgit/offroad/offroadcfg"
)

// Reconcile turns a soup of candidate offset edges into closed, simple,
// non-crossing cycles. It runs the full pipeline — split, merge, graph
// construction, parallel-edge dedup, and rightmost-turn cycle extraction —
// using the package's fixed tolerances (MergeTol, VertexTol, ConnectTol) and
// the grid broad-phase backend with a cell size estimated from the input.
// Cycles of fewer than two edges (which can only be a single self-loop arc)
// are dropped as noise left over from degenerate input.
//
// Reconcile is the fixed-configuration entry point; ReconcileWithOptions is
// the same pipeline for a caller who wants different tolerances or backend.
func Reconcile(edges []geo.Edge) [][]geo.Edge {
	return reconcile(edges, offroadcfg.Options{
		MergeTol:   MergeTol,
		VertexTol:  VertexTol,
		ConnectTol: ConnectTol,
		Backend:    offroadcfg.BackendGrid,
	})
}

// ReconcileWithOptions runs the same pipeline as Reconcile, but with every
// tolerance and the broad-phase backend taken from opts instead of the
// package's fixed defaults. opts is validated before use; an invalid opts
// (see Options.Validate) makes ReconcileWithOptions return a nil result
// rather than run the pipeline against garbage tolerances.
func ReconcileWithOptions(edges []geo.Edge, opts offroadcfg.Options) [][]geo.Edge {
	if err := opts.Validate(); err != nil {
		return nil
	}
	return reconcile(edges, opts)
}

func reconcile(edges []geo.Edge, opts offroadcfg.Options) [][]geo.Edge {
	if len(edges) == 0 {
		return nil
	}

	split := splitAll(edges, newIndex(edges, opts))

	merged := split
	MergeCloseEndpoints(&merged, opts.MergeTol)
	if len(merged) == 0 {
		return nil
	}

	graph := BuildGraph(merged, opts.VertexTol)
	graph = dedupeParallelEdges(graph)

	cycles := ExtractCycles(graph)

	out := make([][]geo.Edge, 0, len(cycles))
	for _, c := range cycles {
		if len(c) < 2 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// newIndex builds the broad-phase index opts.Backend names. BackendFlat
// gets a linear-scan broadphase.FlatIndex regardless of input size — a
// caller asking for it explicitly is presumed to want the correctness
// oracle, not the grid's scaling. BackendGrid gets a broadphase.GridIndex
// sized from opts.GridCellSize when the caller set one, or estimated from
// the input's average edge extent otherwise.
func newIndex(edges []geo.Edge, opts offroadcfg.Options) broadphase.Index {
	if opts.Backend == offroadcfg.BackendFlat {
		return broadphase.NewFlatIndex()
	}
	cellSize := opts.GridCellSize
	if cellSize <= 0 {
		cellSize = estimateCellSize(edges)
	}
	return broadphase.NewGridIndex(cellSize)
}

// estimateCellSize picks a broad-phase grid cell size proportional to the
// average edge bounding-box extent, so the split pass's index does not
// degenerate into a handful of overcrowded cells or a flood of empty ones. A fixed fallback covers the zero-edge and zero-extent cases.
func estimateCellSize(edges []geo.Edge) float64 {
	if len(edges) == 0 {
		return 1
	}
	var sum float64
	for _, e := range edges {
		box := e.AABB()
		sum += (box.MaxX - box.MinX) + (box.MaxY - box.MinY)
	}
	avg := sum / float64(2*len(edges))
	if avg <= 0 {
		return 1
	}
	return avg
}
