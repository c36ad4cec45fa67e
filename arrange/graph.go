package arrange

import (
	"github.com/radevgit/offroad/broadphase"
	"github.com/radevgit/offroad/geo"
)

// VertexID indexes into Graph.Vertices.
type VertexID int

// EdgeID indexes into Graph.Edges.
type EdgeID int

// Incidence names one end of one edge touching a vertex. A loop edge (U==V)
// appears twice in its vertex's adjacency list, once per Incidence.End, since
// the two ends have distinct tangent directions for the rightmost-turn rule
// even though they share a vertex.
type Incidence struct {
	Edge EdgeID
	End  geo.EndOfEdge
}

// GraphEdge is one edge of the planar multigraph, plus the vertex ids of its
// two endpoints.
type GraphEdge struct {
	Geom geo.Edge
	U, V VertexID
}

// Graph is an arena-style undirected planar multigraph: vertices and edges
// are referenced by integer id rather than pointer, following the same
// indirection the teacher library's S2Builder graph uses to keep its edge
// and vertex arrays free of cycles.
type Graph struct {
	Vertices  []geo.Point
	Edges     []GraphEdge
	Adjacency [][]Incidence
}

// BuildGraph clusters the endpoints of edges within vertexTol, assigns each
// cluster a vertex id, and returns the resulting multigraph. Unlike
// MergeCloseEndpoints, BuildGraph does not move or drop edges; it only
// assigns vertex identity, since by the time the pipeline reaches this stage
// endpoints have already been snapped to the precision that matters.
func BuildGraph(edges []geo.Edge, vertexTol float64) *Graph {
	g := &Graph{}
	if len(edges) == 0 {
		return g
	}

	points := make([]geo.Point, 0, len(edges)*2)
	for _, e := range edges {
		points = append(points, e.A, e.B)
	}

	index := broadphase.NewGridIndex(vertexTol * 8)
	for i, p := range points {
		index.Add(int64(i), geo.AABB{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y})
	}
	uf := newEndpointUnionFind(points)
	for i, p := range points {
		box := geo.AABB{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}.Expanded(vertexTol)
		for _, j := range index.Query(box) {
			if int(j) <= i {
				continue
			}
			if p.Distance(points[j]) <= vertexTol {
				uf.union(i, int(j))
			}
		}
	}

	rootToVertex := make(map[int]VertexID)
	vertexOf := func(pointIdx int) VertexID {
		root := uf.find(pointIdx)
		if vid, ok := rootToVertex[root]; ok {
			return vid
		}
		vid := VertexID(len(g.Vertices))
		g.Vertices = append(g.Vertices, uf.centroid(pointIdx))
		rootToVertex[root] = vid
		return vid
	}

	g.Adjacency = make([][]Incidence, 0)
	for i, e := range edges {
		u := vertexOf(2 * i)
		v := vertexOf(2*i + 1)
		eid := EdgeID(len(g.Edges))
		g.Edges = append(g.Edges, GraphEdge{Geom: e, U: u, V: v})

		for int(u) >= len(g.Adjacency) || int(v) >= len(g.Adjacency) {
			g.Adjacency = append(g.Adjacency, nil)
		}
		g.Adjacency[u] = append(g.Adjacency[u], Incidence{Edge: eid, End: geo.EndA})
		g.Adjacency[v] = append(g.Adjacency[v], Incidence{Edge: eid, End: geo.EndB})
	}
	return g
}

// OtherEndpoint returns the vertex at the opposite end of inc's edge from
// "from".
func (g *Graph) OtherEndpoint(inc Incidence, from VertexID) VertexID {
	ge := g.Edges[inc.Edge]
	if ge.U == from {
		return ge.V
	}
	return ge.U
}

// Neighbors returns the incidences at vertex v.
func (g *Graph) Neighbors(v VertexID) []Incidence {
	if int(v) >= len(g.Adjacency) {
		return nil
	}
	return g.Adjacency[v]
}
