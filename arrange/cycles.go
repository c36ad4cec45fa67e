package arrange

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/radevgit/offroad/geo"
)

// turnTieTol bounds how close two candidate turn angles may be before they
// are considered tied; ties are broken by the lower EdgeID, which keeps
// extraction deterministic regardless of adjacency-list iteration order.
const turnTieTol = 1e-12

// ExtractCycles decomposes g into simple, non-crossing closed walks using a
// rightmost-turn rule: arriving at a vertex along one edge, the walk departs
// along whichever other incident edge forms the smallest clockwise angle
// from the reverse of the arrival direction. This is the same "always turn
// tightest-right" rule used to trace face boundaries out of a planar
// doubly-connected-edge-list, adapted here to work directly off Graph's
// Incidence lists instead of a twin/next half-edge array.
//
// No directed dart (EdgeID, EndOfEdge) is consumed by more than one walk. A
// dart is marked used only when the walk that contains it closes, not as
// soon as it is traversed, so that a shared edge's two directions — which
// necessarily belong to two different walks — both remain available until
// each of their walks actually completes. Within a single walk, though, an
// edge may not be revisited in either direction once it has appeared: a
// candidate is excluded if that dart is already used by some completed walk,
// already appears earlier in the walk in progress, or is the edge the walk
// just arrived on. A vertex where every candidate is excluded this way is a
// dead end and aborts the walk.
func ExtractCycles(g *Graph) [][]geo.Edge {
	used := make(map[dart]bool, len(g.Edges)*2)

	arrivalOf := func(d dart) (VertexID, geo.EndOfEdge) {
		ge := g.Edges[d.edge]
		if d.end == geo.EndA {
			return ge.V, geo.EndB
		}
		return ge.U, geo.EndA
	}

	var cycles [][]geo.Edge

	for eid := range g.Edges {
		for _, end := range [2]geo.EndOfEdge{geo.EndA, geo.EndB} {
			d0 := dart{EdgeID(eid), end}
			if used[d0] {
				continue
			}
			walk, ok := traceWalk(g, d0, arrivalOf, used)
			if !ok {
				continue
			}
			edges := make([]geo.Edge, len(walk))
			for i, d := range walk {
				edges[i] = g.Edges[d.edge].Geom
				used[d] = true
			}
			if len(edges) >= 2 {
				cycles = append(cycles, edges)
			}
		}
	}
	return cycles
}

type dart struct {
	edge EdgeID
	end  geo.EndOfEdge
}

// traceWalk follows the rightmost-turn rule starting from d0 until it
// returns to d0, returning the closed sequence of darts. It gives up,
// reporting ok=false, either because a vertex along the way has no
// admissible candidate (a dead end — see ExtractCycles) or after more steps
// than there are darts in the graph, which would mean an unclosable open
// chain.
func traceWalk(
	g *Graph,
	d0 dart,
	arrivalOf func(dart) (VertexID, geo.EndOfEdge),
	used map[dart]bool,
) ([]dart, bool) {
	walk := []dart{d0}
	local := map[EdgeID]bool{d0.edge: true}
	current := d0
	maxSteps := 2*len(g.Edges) + 4

	for step := 0; step < maxSteps; step++ {
		arrivalVertex, arrivalEnd := arrivalOf(current)
		next, ok := nextDart(g, current, arrivalVertex, arrivalEnd, d0, used, local)
		if !ok {
			return nil, false
		}
		if next == d0 {
			return walk, true
		}
		walk = append(walk, next)
		local[next.edge] = true
		current = next
	}
	return nil, false
}

// nextDart picks the rightmost-turn continuation at arrivalVertex, given
// that the walk arrived there via arrived, whose edge end at that vertex is
// arrivalEnd. A candidate is skipped when that dart is already used by a
// completed walk, already appears in the in-progress walk (local), or is the
// edge just arrived on — except for d0 itself, which must stay selectable so
// the walk can close.
func nextDart(
	g *Graph,
	arrived dart,
	arrivalVertex VertexID,
	arrivalEnd geo.EndOfEdge,
	d0 dart,
	used map[dart]bool,
	local map[EdgeID]bool,
) (dart, bool) {
	arrivedEdge := g.Edges[arrived.edge].Geom
	tIn := arrivedEdge.Tangent(arrivalEnd).Neg()
	ref := tIn.Neg()

	var best dart
	bestAngle := math.Inf(1)
	found := false

	for _, inc := range g.Neighbors(arrivalVertex) {
		cand := dart{inc.Edge, inc.End}
		if cand != d0 {
			if local[cand.edge] || used[cand] {
				continue
			}
		}
		tOut := g.Edges[cand.edge].Geom.Tangent(cand.end)
		angle := clockwiseAngleFrom(ref, tOut)
		if !found || angle < bestAngle-turnTieTol ||
			(math.Abs(angle-bestAngle) <= turnTieTol && cand.edge < best.edge) {
			best = cand
			bestAngle = angle
			found = true
		}
	}
	return best, found
}

// clockwiseAngleFrom returns the angle, in [0, 2*pi), that from must be
// rotated clockwise to reach to. atan2 alone only gives the signed CCW
// angle, which clockwise rotation negates; s1.Angle.Normalized() wraps that
// into (-pi, pi], and a negative result is then shifted up by 2*pi.
func clockwiseAngleFrom(from, to geo.Point) float64 {
	ccw := math.Atan2(from.Cross(to), from.Dot(to))
	cw := s1.Angle(-ccw).Normalized().Radians()
	if cw < 0 {
		cw += 2 * math.Pi
	}
	return cw
}
