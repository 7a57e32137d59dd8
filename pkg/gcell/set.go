package gcell

import (
	"errors"
	"sort"
)

// ErrDirty is returned by query operations invoked on a GCellSet that has
// pending pushes not yet folded in by Sort. Callers must not attempt to
// recover from this — it signals a programmer error in call ordering.
var ErrDirty = errors.New("gcell: query on dirty GCellSet, call Sort first")

// Set is an append-then-sort container of grid cells. While dirty (after
// any Push and before the next Sort) the backing slice may contain
// duplicates and is not ordered; only Sort, Push, and Clear are valid.
// Once sorted it is deduplicated and all Prev*/Next* queries are valid,
// implemented as binary searches over the sorted slice — the same flat
// sorted-slice-plus-binary-search shape as a spatial index built once and
// queried many times.
type Set struct {
	cells []GCell
	dirty bool
}

// Clear empties the set and marks it clean (an empty set is trivially
// sorted).
func (s *Set) Clear() {
	s.cells = s.cells[:0]
	s.dirty = false
}

// Push appends c to the set and marks it dirty.
func (s *Set) Push(c GCell) {
	s.cells = append(s.cells, c)
	s.dirty = true
}

// Sort sorts and deduplicates the backing slice and marks the set clean.
// Must be called before any query after any Push.
func (s *Set) Sort() {
	sort.Slice(s.cells, func(i, j int) bool { return s.cells[i].Less(s.cells[j]) })
	s.cells = dedup(s.cells)
	s.dirty = false
}

func dedup(cells []GCell) []GCell {
	if len(cells) == 0 {
		return cells
	}
	out := cells[:1]
	for _, c := range cells[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of distinct cells once sorted (undefined while
// dirty).
func (s *Set) Len() int { return len(s.cells) }

// Cells returns the sorted, deduplicated backing slice. Callers must not
// mutate it.
func (s *Set) Cells() []GCell { return s.cells }

// PrevCell returns the greatest element strictly less than c in sorted
// order, or NoCell if none exists.
func (s *Set) PrevCell(c GCell) (GCell, error) {
	if s.dirty {
		return NoCell, ErrDirty
	}
	idx := sort.Search(len(s.cells), func(i int) bool { return !s.cells[i].Less(c) })
	if idx == 0 {
		return NoCell, nil
	}
	return s.cells[idx-1], nil
}

// NextCell returns the least element strictly greater than c in sorted
// order, or NoCell if none exists.
func (s *Set) NextCell(c GCell) (GCell, error) {
	if s.dirty {
		return NoCell, ErrDirty
	}
	idx := sort.Search(len(s.cells), func(i int) bool { return c.Less(s.cells[i]) })
	if idx == len(s.cells) {
		return NoCell, nil
	}
	return s.cells[idx], nil
}

// PrevY returns the Y coordinate of the greatest element whose key is
// strictly less than (minX, y) — i.e. the next populated row below y —
// or -1 if none exists.
func (s *Set) PrevY(y int16) (int16, error) {
	c, err := s.PrevCell(GCell{X: noCoord, Y: y})
	if err != nil {
		return -1, err
	}
	if c.IsNone() {
		return -1, nil
	}
	return c.Y, nil
}

// NextY returns the Y coordinate of the least element whose key is
// strictly greater than (maxX, y) — i.e. the next populated row above y —
// or -1 if none exists.
func (s *Set) NextY(y int16) (int16, error) {
	const maxCoord = int16(1<<15 - 1)
	c, err := s.NextCell(GCell{X: maxCoord, Y: y})
	if err != nil {
		return -1, err
	}
	if c.IsNone() {
		return -1, nil
	}
	return c.Y, nil
}
