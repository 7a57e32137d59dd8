package stree

import "felinetree/pkg/gcell"

// IterateNeighbours visits every empty-box neighbour of cell, per the
// Prim-Dijkstra neighbour relation of Alpert et al.: a port n is a
// neighbour of cell if the minimal axis-aligned bounding box containing
// both contains no other port. Each neighbour is yielded at most once;
// the order is implementation-defined and must not be relied upon.
//
// Grounded line-for-line on STree::iterate_neighbours in the original
// feline_stree.cc: a same-row check followed by a downward and an
// upward sweep, each maintaining a pair of closing windows (x0, x1)
// bounding the still-unclaimed neighbour space in that row.
func (t *STree) IterateNeighbours(cell gcell.GCell, visit func(gcell.GCell)) error {
	prev, err := t.Ports.PrevCell(cell)
	if err != nil {
		return err
	}
	next, err := t.Ports.NextCell(cell)
	if err != nil {
		return err
	}

	prevSameRow := prev.Y == cell.Y
	nextSameRow := next.Y == cell.Y
	if prevSameRow {
		visit(prev)
	}
	if nextSameRow {
		visit(next)
	}

	// Decreasing Y direction.
	{
		x0, x1 := windowBounds(prevSameRow, prev, nextSameRow, next, t.Box)
		y, err := t.Ports.PrevY(cell.Y)
		if err != nil {
			return err
		}
		for y != -1 && (x0 <= cell.X || x1 > cell.X) {
			x0, x1, err = sweepRow(t, cell, y, x0, x1, visit)
			if err != nil {
				return err
			}
			y, err = t.Ports.PrevY(y)
			if err != nil {
				return err
			}
		}
	}

	// Increasing Y direction.
	{
		x0, x1 := windowBounds(prevSameRow, prev, nextSameRow, next, t.Box)
		y, err := t.Ports.NextY(cell.Y)
		if err != nil {
			return err
		}
		for y != -1 && (x0 <= cell.X || x1 > cell.X) {
			x0, x1, err = sweepRow(t, cell, y, x0, x1, visit)
			if err != nil {
				return err
			}
			y, err = t.Ports.NextY(y)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func windowBounds(prevSameRow bool, prev gcell.GCell, nextSameRow bool, next gcell.GCell, box gcell.BoundingBox) (x0, x1 int16) {
	if prevSameRow {
		x0 = prev.X + 1
	} else {
		x0 = box.X0
	}
	if nextSameRow {
		x1 = next.X - 1
	} else {
		x1 = box.X1
	}
	return
}

// sweepRow handles one populated row y during the downward/upward sweep,
// yielding at most one left-window and one right-window neighbour and
// returning the shrunk window bounds.
func sweepRow(t *STree, cell gcell.GCell, y int16, x0, x1 int16, visit func(gcell.GCell)) (int16, int16, error) {
	if x0 <= cell.X || x1 > cell.X {
		c, err := t.Ports.PrevCell(gcell.GCell{X: cell.X + 1, Y: y})
		if err != nil {
			return x0, x1, err
		}
		if c.X == cell.X && c.Y == y {
			// A port straight above/below cell lies inside the box of every
			// port further out, so it closes both windows.
			visit(c)
			return cell.X + 1, cell.X, nil
		}
	}
	if x0 <= cell.X {
		l, err := t.Ports.PrevCell(gcell.GCell{X: cell.X + 1, Y: y})
		if err != nil {
			return x0, x1, err
		}
		if l.Y == y && l.X >= x0 {
			visit(l)
			x0 = l.X + 1
		}
	}
	if x1 > cell.X {
		r, err := t.Ports.NextCell(gcell.GCell{X: cell.X, Y: y})
		if err != nil {
			return x0, x1, err
		}
		if r.Y == y && r.X <= x1 {
			visit(r)
			x1 = r.X - 1
		}
	}
	return x0, x1, nil
}
