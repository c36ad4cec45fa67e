package broadphase

import (
	"math"

	"github.com/radevgit/offroad/geo"
)

// cellKey identifies a uniform grid cell by its signed integer coordinates.
// The grid makes no assumption about coordinate origin; cell indices are
// derived by flooring coord/cellSize, so negative coordinates work the same
// as positive ones.
type cellKey struct {
	i, j int64
}

type gridEntry struct {
	id  int64
	box geo.AABB
}

// GridIndex is a uniform-grid broad-phase backend. Each entry is inserted
// into every cell its bounding box touches; a query unions the candidates
// from every cell the query box touches, deduplicating by id.
type GridIndex struct {
	cellSize float64
	cells    map[cellKey][]gridEntry
	entries  map[int64]geo.AABB
	queries  int
}

// NewGridIndex returns an empty grid index with the given cell edge length.
// cellSize must be positive; it is purely a performance tuning knob and
// never affects correctness (see package broadphase doc comment).
func NewGridIndex(cellSize float64) *GridIndex {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridIndex{
		cellSize: cellSize,
		cells:    make(map[cellKey][]gridEntry),
		entries:  make(map[int64]geo.AABB),
	}
}

func (g *GridIndex) cellRange(box geo.AABB) (i0, i1, j0, j1 int64) {
	i0 = int64(math.Floor(box.MinX / g.cellSize))
	i1 = int64(math.Floor(box.MaxX / g.cellSize))
	j0 = int64(math.Floor(box.MinY / g.cellSize))
	j1 = int64(math.Floor(box.MaxY / g.cellSize))
	return
}

func (g *GridIndex) Add(id int64, box geo.AABB) {
	g.entries[id] = box
	i0, i1, j0, j1 := g.cellRange(box)
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			key := cellKey{i, j}
			g.cells[key] = append(g.cells[key], gridEntry{id: id, box: box})
		}
	}
}

func (g *GridIndex) Query(box geo.AABB) []int64 {
	g.queries++
	i0, i1, j0, j1 := g.cellRange(box)
	seen := make(map[int64]bool)
	var out []int64
	for i := i0; i <= i1; i++ {
		for j := j0; j <= j1; j++ {
			for _, e := range g.cells[cellKey{i, j}] {
				if seen[e.id] {
					continue
				}
				if e.box.Overlaps(box) {
					seen[e.id] = true
					out = append(out, e.id)
				}
			}
		}
	}
	return out
}

func (g *GridIndex) Clear() {
	g.cells = make(map[cellKey][]gridEntry)
	g.entries = make(map[int64]geo.AABB)
	g.queries = 0
}

func (g *GridIndex) Stats() Stats {
	return Stats{NumEntries: len(g.entries), NumQueries: g.queries, NumCells: len(g.cells)}
}
