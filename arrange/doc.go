// Package arrange turns a soup of candidate offset edges into a clean set
// of non-self-intersecting closed cycles.
//
// The pipeline has three stages, run in order by Reconcile:
//
//	split  — cut every pair of intersecting edges at their intersection
//	         points, accelerated by a broad-phase index (package broadphase).
//	merge  — cluster near-coincident endpoints, snap them to a shared
//	         vertex, and drop the degenerate micro-edges that result.
//	graph  — build an undirected planar multigraph from the merged edges
//	         and decompose it into non-crossing cycles via a rightmost-turn
//	         face-tracing rule.
//
// Everything here is synchronous and single-threaded; a call to Reconcile
// owns all of its intermediate state and shares nothing across calls.
package arrange

// Fixed tolerances Reconcile runs with. A caller wanting different values,
// or a different broad-phase backend, should call ReconcileWithOptions with
// an offroadcfg.Options instead.
const (
	// MergeTol is the endpoint clustering radius used by the merger.
	MergeTol = 1e-8
	// VertexTol is the radius used to identify coincident vertices when the
	// planar multigraph is built.
	VertexTol = 1e-8
	// ConnectTol is the acceptance tolerance for treating two edges as
	// meeting at a shared endpoint once cycles have been extracted.
	ConnectTol = 1e-7
)
