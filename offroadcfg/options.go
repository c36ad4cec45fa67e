// Package offroadcfg holds the configuration surface around the
// reconciliation pipeline in package arrange: which broad-phase backend to
// build, and (for callers that want something other than the package's
// built-in fixed tolerances) a place to carry their own.
package offroadcfg

// BroadphaseBackend selects which broadphase.Index implementation a pipeline
// run should build.
type BroadphaseBackend int

const (
	// BackendFlat selects broadphase.FlatIndex: a linear scan, useful for
	// small inputs or as a correctness oracle.
	BackendFlat BroadphaseBackend = iota
	// BackendGrid selects broadphase.GridIndex: a uniform spatial grid,
	// the default for anything but tiny inputs.
	BackendGrid
)

// Options configures a reconciliation run. The zero value is not valid;
// build one with Default and override individual fields.
type Options struct {
	// MergeTol is the endpoint clustering radius for MergeCloseEndpoints.
	MergeTol float64
	// VertexTol is the radius used to identify coincident vertices when
	// building the planar multigraph.
	VertexTol float64
	// ConnectTol is the acceptance tolerance for treating two edges as
	// meeting at a shared endpoint.
	ConnectTol float64
	// Backend selects the broad-phase index implementation.
	Backend BroadphaseBackend
	// GridCellSize is the cell edge length used when Backend is
	// BackendGrid and the caller wants a fixed size instead of one
	// estimated from the input edges.
	GridCellSize float64
}

// Default returns the package's baseline tolerances: MergeTol, VertexTol and
// ConnectTol each 1e-8, 1e-8 and 1e-7 respectively, with the grid backend and
// no fixed cell size (callers get the size estimated from their input).
func Default() Options {
	return Options{
		MergeTol:   1e-8,
		VertexTol:  1e-8,
		ConnectTol: 1e-7,
		Backend:    BackendGrid,
	}
}

// Validate reports an error if o cannot be used to run a pipeline.
func (o Options) Validate() error {
	if o.MergeTol <= 0 {
		return ErrInvalidTolerance
	}
	if o.VertexTol <= 0 {
		return ErrInvalidTolerance
	}
	if o.ConnectTol <= 0 {
		return ErrInvalidTolerance
	}
	if o.Backend != BackendFlat && o.Backend != BackendGrid {
		return ErrUnknownBackend
	}
	return nil
}
