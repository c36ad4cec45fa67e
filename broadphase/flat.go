package broadphase

import "github.com/radevgit/offroad/geo"

type flatEntry struct {
	id  int64
	box geo.AABB
}

// FlatIndex is the simplest possible backend: a linear scan over every
// entry. It is O(n) per query but has no setup cost, and is a useful
// reference implementation to test the grid backend against.
type FlatIndex struct {
	entries []flatEntry
	queries int
}

// NewFlatIndex returns an empty flat index.
func NewFlatIndex() *FlatIndex {
	return &FlatIndex{}
}

func (f *FlatIndex) Add(id int64, box geo.AABB) {
	f.entries = append(f.entries, flatEntry{id: id, box: box})
}

func (f *FlatIndex) Query(box geo.AABB) []int64 {
	f.queries++
	var out []int64
	for _, e := range f.entries {
		if e.box.Overlaps(box) {
			out = append(out, e.id)
		}
	}
	return out
}

func (f *FlatIndex) Clear() {
	f.entries = nil
	f.queries = 0
}

func (f *FlatIndex) Stats() Stats {
	return Stats{NumEntries: len(f.entries), NumQueries: f.queries, NumCells: 1}
}
