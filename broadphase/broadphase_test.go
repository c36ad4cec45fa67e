package broadphase

import (
	"sort"
	"testing"

	"github.com/radevgit/offroad/geo"
)

// backends lists the Index implementations every test in this file checks
// for identical query results, so a grid-specific bug shows up as a
// disagreement against the flat reference rather than a silent miss.
func backends() map[string]Index {
	return map[string]Index{
		"flat": NewFlatIndex(),
		"grid": NewGridIndex(1),
	}
}

func box(minX, minY, maxX, maxY float64) geo.AABB {
	return geo.AABB{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

func sortedIDs(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestQueryFindsOverlaps(t *testing.T) {
	for name, idx := range backends() {
		idx.Add(1, box(0, 0, 1, 1))
		idx.Add(2, box(5, 5, 6, 6))
		idx.Add(3, box(0.5, 0.5, 1.5, 1.5))

		got := sortedIDs(idx.Query(box(0, 0, 1, 1)))
		want := []int64{1, 3}
		if len(got) != len(want) {
			t.Fatalf("[%s] Query() = %v, want %v", name, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("[%s] Query() = %v, want %v", name, got, want)
			}
		}
	}
}

func TestQueryNoOverlap(t *testing.T) {
	for name, idx := range backends() {
		idx.Add(1, box(0, 0, 1, 1))
		if got := idx.Query(box(10, 10, 11, 11)); len(got) != 0 {
			t.Errorf("[%s] Query() = %v, want none", name, got)
		}
	}
}

func TestClearResetsIndex(t *testing.T) {
	for name, idx := range backends() {
		idx.Add(1, box(0, 0, 1, 1))
		idx.Clear()
		if got := idx.Query(box(0, 0, 1, 1)); len(got) != 0 {
			t.Errorf("[%s] Query() after Clear() = %v, want none", name, got)
		}
		if s := idx.Stats(); s.NumEntries != 0 {
			t.Errorf("[%s] Stats().NumEntries after Clear() = %d, want 0", name, s.NumEntries)
		}
	}
}

func TestStatsCountsQueries(t *testing.T) {
	for name, idx := range backends() {
		idx.Add(1, box(0, 0, 1, 1))
		idx.Query(box(0, 0, 1, 1))
		idx.Query(box(0, 0, 1, 1))
		if s := idx.Stats(); s.NumQueries != 2 {
			t.Errorf("[%s] Stats().NumQueries = %d, want 2", name, s.NumQueries)
		}
	}
}

func TestGridIndexSpansMultipleCells(t *testing.T) {
	g := NewGridIndex(1)
	g.Add(1, box(0.1, 0.1, 2.9, 0.2))
	got := sortedIDs(g.Query(box(2.5, 0.1, 2.8, 0.2)))
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Query() for a box spanning several cells = %v, want [1]", got)
	}
}
